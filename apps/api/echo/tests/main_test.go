package tests

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"

	. "github.com/daakhpc/StudentAdmissionSystem/apps/api/echo"
	"github.com/daakhpc/StudentAdmissionSystem/core"
	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
	emailsvc "github.com/daakhpc/StudentAdmissionSystem/services/email"
	logsvc "github.com/daakhpc/StudentAdmissionSystem/services/logger"
	storagesvc "github.com/daakhpc/StudentAdmissionSystem/services/storage"
	dummydb "github.com/daakhpc/StudentAdmissionSystem/storage/database/dummy"
)

var (
	db    *dummydb.DB
	repo  admission.Repository
	app   Server
	store *storagesvc.InMemStorage

	adminPassword = "Sup3rS3cret!"

	errMissingToken = httpErr{Error: "missing or malformed jwt"}
)

func TestMain(m *testing.M) {
	var err error

	// set up store & repo
	db, err = dummydb.Open()
	if err != nil {
		fmt.Printf("dummydb.Open(): %v", err)
		os.Exit(1)
	}
	repo = dummydb.NewSubmissionRepository(db)

	// set up the admin account
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		fmt.Printf("bcrypt.GenerateFromPassword(): %v", err)
		os.Exit(1)
	}
	core.Conf.AdminEmail = "admin@test.cd"
	core.Conf.AdminPasswordHash = string(hash)
	core.Conf.PageSize = 3
	core.Conf.Debug = false // assert on production error bodies
	core.Conf.TestMode = true

	// set up services
	mailSvc := emailsvc.NewConsoleServiceMock()
	admSvc := admission.NewServiceMock(nil, repo, mailSvc)
	store = storagesvc.NewInMemServiceMock()

	// set up server
	app = NewServer(&Options{
		DisableReqLogs: true,
		AdmissionSvc:   admSvc,
		FileStorage:    store,
		Logger:         logsvc.NewStdLogger(log.New(io.Discard, "", 0)),
	})

	os.Exit(m.Run())
}
