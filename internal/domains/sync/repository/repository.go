package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/sqlite"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
)

// Local is the on-device document store.
type Local interface {
	gRepo.Documents
}

// Remote is the shared document store the local store syncs against.
type Remote interface {
	gRepo.Documents
}

func NewLocal(db *sqlite.Connection, otel otel.Otel) Local {
	return gRepo.NewDocuments(constant.StoreLocal, db.Read, db.Write, otel)
}

// NewRemote returns nil when no remote connection is available.
func NewRemote(db *postgres.Connection, otel otel.Otel) Remote {
	if db == nil {
		return nil
	}

	return gRepo.NewDocuments(constant.StoreRemote, db.Read, db.Write, otel)
}
