package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
	dummydb "github.com/daakhpc/StudentAdmissionSystem/storage/database/dummy"
)

var repo admission.Repository

func setup(t *testing.T) *commandLine {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open(): %v", err)
	}
	repo = dummydb.NewSubmissionRepository(db)

	// start CLI; the sql handle is only touched by the mocked migrations
	return &commandLine{
		db:  &sqlx.DB{},
		svc: admission.NewServiceMock(nil, repo, nil),
	}
}

func seedSubmission(t *testing.T, code, candidate string) admission.Submission {
	t.Helper()
	sub := admission.Submission{
		ID:            uuid.New().String(),
		CreatedAt:     time.Now().UTC(),
		Code:          code,
		CandidateName: candidate,
		FatherName:    "Some Father",
		Course:        "DHP (2 Year Diploma)",
	}
	if err := repo.CreateSubmissions(context.Background(), []admission.Submission{sub}); err != nil {
		t.Fatalf("seedSubmission(): %v", err)
	}
	return sub
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	extra      interface{}
}

func Test_commandLine_migrate(t *testing.T) {
	cli := setup(t)

	gooseRunFunc = func(command string, db *sql.DB, fsys fs.FS, dir string, args ...string) error {
		switch command {
		case "up", "up-by-one", "down", "fix", "redo", "reset", "status", "version": // pass
		case "up-to", "down-to":
			if len(args) == 0 {
				return fmt.Errorf("%s must be of form: goose [OPTIONS] DRIVER DBSTRING %s VERSION", command, command)
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return fmt.Errorf("version must be a number (got '%s')", args[0])
			}
		case "create":
			if len(args) == 0 {
				return fmt.Errorf("create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]")
			}
		default:
			return fmt.Errorf("%q: no such command", command)
		}
		return nil
	}

	tests := []cliTest{
		{name: "no subcommand", args: []string{"migrate"}, wantErr: errHelp},
		{name: "unknown subcommand", args: []string{"migrate", "lol"}, wantErrStr: "\"lol\": no such command"},
		{name: "up-to: no args", args: []string{"migrate", "up-to"}, wantErrStr: "up-to must be of form: goose [OPTIONS] DRIVER DBSTRING up-to VERSION"},
		{name: "up-to: non-int arg", args: []string{"migrate", "up-to", "lol"}, wantErrStr: "version must be a number (got 'lol')"},
		{name: "create: no args", args: []string{"migrate", "create"}, wantErrStr: "create must be of form: goose [OPTIONS] DRIVER DBSTRING create NAME [go|sql]"},
		{name: "up", args: []string{"migrate", "up"}},
		{name: "up-to", args: []string{"migrate", "up-to", "2"}},
		{name: "down", args: []string{"migrate", "down"}},
		{name: "down-to", args: []string{"migrate", "down-to", "1"}},
		{name: "redo", args: []string{"migrate", "redo"}},
		{name: "reset", args: []string{"migrate", "reset"}},
		{name: "status", args: []string{"migrate", "status"}},
		{name: "version", args: []string{"migrate", "version"}},
		{name: "create", args: []string{"migrate", "create", "course", "sql"}},
		{name: "fix", args: []string{"migrate", "fix"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != nil {
				if tt.wantErr != nil {
					if err != tt.wantErr {
						t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
					}
				} else if tt.wantErrStr != "" {
					if err.Error() != tt.wantErrStr {
						t.Errorf("cli.run() error.Error() = %s, wantErrStr %s", err.Error(), tt.wantErrStr)
					}
				} else {
					t.Errorf("cli.run() unexpected error = %v", err)
				}
			}
		})
	}
}

func Test_commandLine_list(t *testing.T) {
	cli := setup(t)
	seedSubmission(t, "100001", "Asha Verma")
	seedSubmission(t, "100002", "Binod Smith")

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "list all", args: []string{"list"}},
		{name: "list with search", args: []string{"list", "-search", "smith"}},
		{name: "list with course", args: []string{"list", "-course", "DHP (2 Year Diploma)"}},
		{name: "list no match", args: []string{"list", "-search", "nothing"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_backupRestore(t *testing.T) {
	cli := setup(t)
	outDir := t.TempDir()

	t.Run("backup with no data", func(t *testing.T) {
		err := cli.run([]string{"admin", "backup", "-out", outDir})
		if err != admission.ErrNoData {
			t.Errorf("cli.run() error = %v, wantErr %v", err, admission.ErrNoData)
		}
	})

	a := seedSubmission(t, "100001", "Asha Verma")
	b := seedSubmission(t, "100002", "Binod Smith")
	backupPath := filepath.Join(outDir, admission.BackupFilename(time.Now().UTC()))

	t.Run("backup", func(t *testing.T) {
		if err := cli.run([]string{"admin", "backup", "-out", outDir}); err != nil {
			t.Fatalf("cli.run() error = %v", err)
		}
		if _, err := os.Stat(backupPath); err != nil {
			t.Errorf("backup file missing: %v", err)
		}
	})

	t.Run("restore requires a file", func(t *testing.T) {
		err := cli.run([]string{"admin", "restore"})
		if err != errHelp {
			t.Errorf("cli.run() error = %v, wantErr %v", err, errHelp)
		}
	})

	t.Run("restore declined", func(t *testing.T) {
		if err := repo.DeleteAllSubmissions(context.Background()); err != nil {
			t.Fatalf("DeleteAllSubmissions(): %v", err)
		}
		confirmFunc = func(string) bool { return false }

		if err := cli.run([]string{"admin", "restore", "-file", backupPath}); err != nil {
			t.Fatalf("cli.run() error = %v", err)
		}
		subs, err := repo.QuerySubmissions(context.Background(), nil)
		if err != nil {
			t.Fatalf("QuerySubmissions(): %v", err)
		}
		if len(subs) != 0 {
			t.Errorf("declined restore still wrote %d submissions", len(subs))
		}
	})

	t.Run("restore", func(t *testing.T) {
		confirmFunc = func(string) bool { return true }

		if err := cli.run([]string{"admin", "restore", "-file", backupPath}); err != nil {
			t.Fatalf("cli.run() error = %v", err)
		}

		subs, err := repo.QuerySubmissions(context.Background(), nil)
		if err != nil {
			t.Fatalf("QuerySubmissions(): %v", err)
		}
		if len(subs) != 2 {
			t.Fatalf("restored %d submissions, want 2", len(subs))
		}
		if subs[0].Code != b.Code || subs[1].Code != a.Code {
			t.Errorf("restored codes %q, %q", subs[0].Code, subs[1].Code)
		}
	})
}

func Test_commandLine_hashPassword(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "empty password", args: []string{"hashpassword"}, wantErr: errHelp},
		{name: "hash", args: []string{"hashpassword"}, extra: extra{pwd: "Sup3rS3cret!"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
