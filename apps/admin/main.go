package main

import (
	"log"
	"os"

	"github.com/daakhpc/StudentAdmissionSystem/core"
	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
	"github.com/daakhpc/StudentAdmissionSystem/storage/database"
	sqlxrepos "github.com/daakhpc/StudentAdmissionSystem/storage/database/sqlx"
)

var logger *log.Logger // todo: logger service

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	errAndDie(database.CreateIfNotExist(core.Conf))
	db, err := database.Open(core.Conf)
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(db.Ping())

	// start CLI; no mail service, nothing here notifies anyone
	cli := commandLine{
		db:  db,
		svc: admission.NewService(db, sqlxrepos.NewSubmissionRepository(db), nil),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
