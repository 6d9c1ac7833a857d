package model

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkListPattern = regexp.MustCompile(`status IN \(([^)]+)\)`)

// migrationStatusValues extracts the status vocabulary permitted by a
// migration's CHECK constraint.
func migrationStatusValues(t *testing.T, file string) []string {
	t.Helper()

	content, err := os.ReadFile(file)
	require.NoError(t, err)

	match := checkListPattern.FindStringSubmatch(string(content))
	require.NotNil(t, match, "no status CHECK constraint in %s", file)

	var values []string
	for _, v := range strings.Split(match[1], ",") {
		values = append(values, strings.Trim(strings.TrimSpace(v), "'"))
	}
	return values
}

// The status vocabularies in the database schema and the enum codecs
// must agree exactly: a value the schema permits but the codec rejects
// cannot be scanned back out, and a codec value the schema rejects
// cannot be stored.
func TestMemberStatusMatchesSchema(t *testing.T) {
	schemaValues := migrationStatusValues(t,
		"../../db/migrations/20250301000003_create_organization_members.up.sql")

	var codecValues []string
	for _, s := range MemberStatusValues() {
		codecValues = append(codecValues, s.String())
	}

	assert.ElementsMatch(t, codecValues, schemaValues)

	for _, v := range schemaValues {
		_, err := MemberStatusString(v)
		assert.NoError(t, err, "schema permits %q but codec rejects it", v)
	}
}

func TestInvitationStatusMatchesSchema(t *testing.T) {
	schemaValues := migrationStatusValues(t,
		"../../db/migrations/20250301000004_create_organization_invitations.up.sql")

	var codecValues []string
	for _, s := range InvitationStatusValues() {
		codecValues = append(codecValues, s.String())
	}

	assert.ElementsMatch(t, codecValues, schemaValues)

	for _, v := range schemaValues {
		_, err := InvitationStatusString(v)
		assert.NoError(t, err, "schema permits %q but codec rejects it", v)
	}
}
