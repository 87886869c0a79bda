package domain

import "context"

// ConvertPort converts single values without keeping history
type ConvertPort interface {
	Convert(ctx context.Context, in ValueInput) (Conversion, error)
	Policy() Policy
}

// SessionPort manages per-caller query logs
type SessionPort interface {
	Open(ctx context.Context) (Session, error)
	Session(ctx context.Context, id string) (Session, error)
	Record(ctx context.Context, id string, in ValueInput) (QueryRecord, error)
	Queries(ctx context.Context, id string) ([]QueryRecord, error)
	History(ctx context.Context, id string) (History, error)
	Close(ctx context.Context, id string) error
}

// ServicePort is the full service contract
type ServicePort interface {
	ConvertPort
	SessionPort
}
