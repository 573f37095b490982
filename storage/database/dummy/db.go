package dummydb

import (
	"sync"

	"github.com/daakhpc/StudentAdmissionSystem/core/admission"
)

type (
	DB struct {
		submission *submissionTable
	}

	submissionTable struct {
		sync.RWMutex
		table map[string]*storedSubmission
		seq   int
	}

	// storedSubmission keeps the insertion sequence so recency ordering is
	// stable for records sharing a timestamp.
	storedSubmission struct {
		admission.Submission
		seq int
	}
)

func Open() (*DB, error) {
	db := &DB{
		submission: &submissionTable{table: make(map[string]*storedSubmission)},
	}
	return db, nil
}
