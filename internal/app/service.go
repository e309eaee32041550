package app

import (
	"time"

	"schema-context/internal/adapters"
	"schema-context/internal/ports"
)

type Service struct {
	Schemas  ports.SchemaPort
	Contexts ports.ContextWriterPort
	Clock    func() time.Time
}

func NewService() Service {
	return Service{
		Schemas:  adapters.NewSchemaFileAdapter(),
		Contexts: adapters.NewContextFileAdapter(),
		Clock:    time.Now,
	}
}
