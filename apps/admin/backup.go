package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	writeFileFunc = os.WriteFile // mockable
	confirmFunc   = askConfirm   // mockable
)

func askConfirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}

func (cli *commandLine) backup(outDir string) error {
	data, filename, err := cli.svc.Backup(context.Background())
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, filename)
	if err = writeFileFunc(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("backup written to %s\n", path)
	return nil
}

func (cli *commandLine) restore(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	if !confirmFunc("This replaces ALL stored submissions. Continue?") {
		fmt.Println("aborted")
		return nil
	}

	count, err := cli.svc.Restore(context.Background(), data)
	if err != nil {
		return err
	}
	fmt.Printf("restored %d submission(s)\n", count)
	return nil
}
