package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/sqlite"
	"frontdesk/internal/domains/group/model"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
)

type GroupProfile interface {
	gRepo.Table[model.GroupProfile]
}

type repositoryImpl struct {
	gRepo.Repository[model.GroupProfile]
}

func New(db *sqlite.Connection, otel otel.Otel) GroupProfile {
	docs := gRepo.NewDocuments(constant.StoreLocal, db.Read, db.Write, otel)

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.GroupProfile](model.EntityName, model.TableName, docs, otel),
	}
}
