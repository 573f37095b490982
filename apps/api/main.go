package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	echoapi "github.com/daakhpc/StudentAdmissionSystem/apps/api/echo"
	"github.com/daakhpc/StudentAdmissionSystem/core"
	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
	emailsvc "github.com/daakhpc/StudentAdmissionSystem/services/email"
	logsvc "github.com/daakhpc/StudentAdmissionSystem/services/logger"
	storagesvc "github.com/daakhpc/StudentAdmissionSystem/services/storage"
	"github.com/daakhpc/StudentAdmissionSystem/storage/database"
	sqlxrepos "github.com/daakhpc/StudentAdmissionSystem/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up logging
	var logger core.Logger
	if core.Conf.Debug || core.Conf.TestMode {
		logger = logsvc.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	// set up DB; migrations are the admin CLI's job
	db, err := database.Open(core.Conf)
	errAndDie(std, err)
	defer func() { _ = db.Close() }()

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	fileStore, err := storagesvc.NewOSSService()
	errAndDie(std, err)
	admSvc := admission.NewService(db, sqlxrepos.NewSubmissionRepository(db), mailSvc)

	// start API server
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	app := echoapi.NewServer(&echoapi.Options{
		Address:      core.Conf.Server.Addr(),
		AdmissionSvc: admSvc,
		FileStorage:  fileStore,
		Logger:       logger,
		Shutdown:     func() { shutdown <- syscall.SIGTERM },
	})
	go app.Start()

	<-shutdown
	logger.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	if err = app.Stop(ctx); err != nil {
		logger.Error("could not stop server gracefully", err)
	}
}

func errAndDie(std *log.Logger, err error) {
	if err != nil {
		std.Fatal(err)
	}
}
