package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/breeqa/config"
	ConfigFileName    = "breeqa.yml"
)

// BreeqaConfig holds all Breeqa server configuration settings
type BreeqaConfig struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// InvitationTTLHours is how long invitations stay valid, in hours
	InvitationTTLHours int `yaml:"invitation_ttl_hours" json:"invitation_ttl_hours"`

	// SessionTTLMinutes is the TTL for session tokens in minutes
	SessionTTLMinutes int `yaml:"session_ttl_minutes" json:"session_ttl_minutes"`

	// APIListLimitMax is the maximum number of results for listing requests
	APIListLimitMax int `yaml:"api_list_limit_max" json:"api_list_limit_max"`

	// SiteURL is the base URL embedded in invitation links
	SiteURL string `yaml:"site_url" json:"site_url"`

	// MailerFromDomain is the domain for the noreply sender address
	MailerFromDomain string `yaml:"mailer_from_domain" json:"mailer_from_domain"`

	// MailerTemplateDir is an optional directory of email templates
	MailerTemplateDir string `yaml:"mailer_template_dir" json:"mailer_template_dir"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *BreeqaConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *BreeqaConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	// Load config
	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *BreeqaConfig {
	return &BreeqaConfig{
		TrustedProxies:     []string{},
		InvitationTTLHours: 168,
		SessionTTLMinutes:  480,
		APIListLimitMax:    1000,
		SiteURL:            "http://localhost:3000",
		MailerFromDomain:   "",
		MailerTemplateDir:  "",
		sources:            make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*BreeqaConfig, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("BREEQA_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig BreeqaConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "invitation_ttl_hours", "session_ttl_minutes",
		"api_list_limit_max", "site_url", "mailer_from_domain",
		"mailer_template_dir",
	}
}

func (c *BreeqaConfig) applyFileConfig(file *BreeqaConfig) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.InvitationTTLHours != 0 {
		c.InvitationTTLHours = file.InvitationTTLHours
		c.sources["invitation_ttl_hours"] = "file"
	}
	if file.SessionTTLMinutes != 0 {
		c.SessionTTLMinutes = file.SessionTTLMinutes
		c.sources["session_ttl_minutes"] = "file"
	}
	if file.APIListLimitMax != 0 {
		c.APIListLimitMax = file.APIListLimitMax
		c.sources["api_list_limit_max"] = "file"
	}
	if file.SiteURL != "" {
		c.SiteURL = file.SiteURL
		c.sources["site_url"] = "file"
	}
	if file.MailerFromDomain != "" {
		c.MailerFromDomain = file.MailerFromDomain
		c.sources["mailer_from_domain"] = "file"
	}
	if file.MailerTemplateDir != "" {
		c.MailerTemplateDir = file.MailerTemplateDir
		c.sources["mailer_template_dir"] = "file"
	}
}

func (c *BreeqaConfig) applyEnvConfig() {
	if val := os.Getenv("BREEQA_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("BREEQA_INVITATION_TTL_HOURS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.InvitationTTLHours = i
			c.sources["invitation_ttl_hours"] = "environment"
		}
	}
	if val := os.Getenv("BREEQA_SESSION_TTL_MINUTES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SessionTTLMinutes = i
			c.sources["session_ttl_minutes"] = "environment"
		}
	}
	if val := os.Getenv("BREEQA_API_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIListLimitMax = i
			c.sources["api_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("BREEQA_SITE_URL"); val != "" {
		c.SiteURL = val
		c.sources["site_url"] = "environment"
	}
	if val := os.Getenv("BREEQA_MAILER_FROM_DOMAIN"); val != "" {
		c.MailerFromDomain = val
		c.sources["mailer_from_domain"] = "environment"
	}
	if val := os.Getenv("BREEQA_MAILER_TEMPLATE_DIR"); val != "" {
		c.MailerTemplateDir = val
		c.sources["mailer_template_dir"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *BreeqaConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *BreeqaConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// InvitationTTL returns the invitation TTL as a duration
func (c *BreeqaConfig) InvitationTTL() time.Duration {
	return time.Duration(c.InvitationTTLHours) * time.Hour
}

// SessionTTL returns the session token TTL as a duration
func (c *BreeqaConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// SessionKey returns the HMAC key used to sign session tokens.
// Secrets stay out of the config file; environment only.
func SessionKey() string {
	return os.Getenv("BREEQA_SESSION_KEY")
}

// ResendAPIKey returns the Resend API key, empty when email is disabled
func ResendAPIKey() string {
	return os.Getenv("RESEND_API_KEY")
}

// IsTrustedProxy checks if an IP is from a trusted proxy
func (c *BreeqaConfig) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *BreeqaConfig) Validate() error {
	// Validate trusted proxies are valid CIDR ranges
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.InvitationTTLHours <= 0 {
		return fmt.Errorf("invitation_ttl_hours must be positive, got %d", c.InvitationTTLHours)
	}
	if c.SessionTTLMinutes <= 0 {
		return fmt.Errorf("session_ttl_minutes must be positive, got %d", c.SessionTTLMinutes)
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *BreeqaConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
		{Name: "invitation_ttl_hours", Value: strconv.Itoa(c.InvitationTTLHours), Source: c.Source("invitation_ttl_hours")},
		{Name: "session_ttl_minutes", Value: strconv.Itoa(c.SessionTTLMinutes), Source: c.Source("session_ttl_minutes")},
		{Name: "api_list_limit_max", Value: strconv.Itoa(c.APIListLimitMax), Source: c.Source("api_list_limit_max")},
		{Name: "site_url", Value: c.SiteURL, Source: c.Source("site_url")},
		{Name: "mailer_from_domain", Value: c.MailerFromDomain, Source: c.Source("mailer_from_domain")},
		{Name: "mailer_template_dir", Value: c.MailerTemplateDir, Source: c.Source("mailer_template_dir")},
	}
}

// FormatText returns a text representation of the configuration
func (c *BreeqaConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *BreeqaConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
