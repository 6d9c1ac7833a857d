package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/breeqa/breeqa-server/pkg/config"
	"github.com/breeqa/breeqa-server/pkg/invite"
	"github.com/breeqa/breeqa-server/pkg/mailer"
	"github.com/breeqa/breeqa-server/pkg/members"
	"github.com/breeqa/breeqa-server/pkg/server/middleware"
	"github.com/breeqa/breeqa-server/pkg/server/store"
	gormstore "github.com/breeqa/breeqa-server/pkg/server/store/gorm"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.BreeqaConfig
	Logger *logrus.Logger

	Memberships   store.MembershipsStore
	Invitations   store.InvitationsStore
	Organizations store.OrganizationsStore
	Projects      store.ProjectsStore
	Users         store.UsersStore
	Health        store.HealthStore

	Invites *invite.Service
	Members *members.Service
	Mailer  mailer.Mailer

	Session *middleware.SessionAuthenticator

	templates *mailer.Templates
	srv       *http.Server
}

func NewServer(
	db *gorm.DB,
	cfg *config.BreeqaConfig,
	logger *logrus.Logger,
	host string,
	port string,
) (*Server, error) {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	memberships := gormstore.NewMembershipsStore(db)
	invitations := gormstore.NewInvitationsStore(db)

	templates, err := mailer.NewTemplates(cfg.MailerTemplateDir, logger)
	if err != nil {
		return nil, err
	}

	var m mailer.Mailer
	if apiKey := config.ResendAPIKey(); apiKey != "" {
		m = mailer.NewResendMailer(mailer.ResendConfig{
			APIKey:     apiKey,
			FromDomain: cfg.MailerFromDomain,
			SiteURL:    cfg.SiteURL,
		}, templates, logger)
	} else {
		m = mailer.NewLogMailer(logger)
	}

	return &Server{
		Router: router,
		DB:     db,
		Config: cfg,
		Logger: logger,

		Memberships:   memberships,
		Invitations:   invitations,
		Organizations: gormstore.NewOrganizationsStore(db),
		Projects:      gormstore.NewProjectsStore(db),
		Users:         gormstore.NewUsersStore(db),
		Health:        gormstore.NewHealthStore(db),

		Invites: invite.NewService(invitations, memberships, m, logger, cfg.InvitationTTL()),
		Members: members.NewService(memberships, logger),
		Mailer:  m,

		Session: middleware.NewSessionAuthenticator([]byte(config.SessionKey()), cfg),

		templates: templates,
		srv:       srv,
	}, nil
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Close() error {
	return s.templates.Close()
}
