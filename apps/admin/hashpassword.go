package main

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashPassword prints the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func (cli *commandLine) hashPassword(pwd []byte) error {
	hash, err := bcrypt.GenerateFromPassword(pwd, bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", hash)
	return nil
}
