package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db  *sqlx.DB
	svc admission.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS]       - run database migrations (up, down, status, ...)")
	fmt.Println("  list [-search S] [-course C] - print the stored submissions")
	fmt.Println("  backup [-out DIR]            - write every submission to a dated JSON file")
	fmt.Println("  restore -file FILE           - replace all submissions with a backup file")
	fmt.Println("  hashpassword                 - hash the admin password for ADMIN_PASSWORD_HASH")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listSearch := listCmd.String("search", "", "Filter by submission number, candidate or father name.")
	listCourse := listCmd.String("course", "", "Filter by course.")

	backupCmd := flag.NewFlagSet("backup", flag.ExitOnError)
	backupOut := backupCmd.String("out", ".", "Directory the backup file is written to.")

	restoreCmd := flag.NewFlagSet("restore", flag.ExitOnError)
	restoreFile := restoreCmd.String("file", "", "The backup file to restore from. Replaces the whole table.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "list":
		if err := listCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.list(*listSearch, *listCourse)
	case "backup":
		if err := backupCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.backup(*backupOut)
	case "restore":
		if err := restoreCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *restoreFile == "" {
			restoreCmd.Usage()
			return errHelp
		}
		return cli.restore(*restoreFile)
	case "hashpassword":
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			cli.printUsage()
			return errHelp
		}
		return cli.hashPassword(pwd)
	default:
		cli.printUsage()
		return errHelp
	}
}
