package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/sqlite"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared/constant"
	gRepo "frontdesk/shared/repository"
)

type Booking interface {
	gRepo.Table[model.Booking]
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *sqlite.Connection, otel otel.Otel) Booking {
	docs := gRepo.NewDocuments(constant.StoreLocal, db.Read, db.Write, otel)

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, docs, otel),
	}
}
