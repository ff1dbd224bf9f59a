package data

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/superteam-academy/academy-server/pkg/academy/data/config"
	config_memory "github.com/superteam-academy/academy-server/pkg/academy/data/config/memory"
	config_postgres "github.com/superteam-academy/academy-server/pkg/academy/data/config/postgres"
	"github.com/superteam-academy/academy-server/pkg/academy/data/course"
	course_memory "github.com/superteam-academy/academy-server/pkg/academy/data/course/memory"
	course_postgres "github.com/superteam-academy/academy-server/pkg/academy/data/course/postgres"
	"github.com/superteam-academy/academy-server/pkg/academy/data/enrollment"
	enrollment_memory "github.com/superteam-academy/academy-server/pkg/academy/data/enrollment/memory"
	enrollment_postgres "github.com/superteam-academy/academy-server/pkg/academy/data/enrollment/postgres"
	"github.com/superteam-academy/academy-server/pkg/academy/data/learner"
	learner_memory "github.com/superteam-academy/academy-server/pkg/academy/data/learner/memory"
	learner_postgres "github.com/superteam-academy/academy-server/pkg/academy/data/learner/postgres"
	"github.com/superteam-academy/academy-server/pkg/academy/data/reward"
	reward_memory "github.com/superteam-academy/academy-server/pkg/academy/data/reward/memory"
	reward_postgres "github.com/superteam-academy/academy-server/pkg/academy/data/reward/postgres"
	pg "github.com/superteam-academy/academy-server/pkg/database/postgres"
)

// Aliases so each store interface can be embedded under a distinct name.
type (
	configStore     = config.Store
	courseStore     = course.Store
	learnerStore    = learner.Store
	enrollmentStore = enrollment.Store
	rewardStore     = reward.Store
)

// Provider is the aggregate store surface the program executor operates on.
type Provider interface {
	config.Store
	course.Store
	learner.Store
	enrollment.Store
	reward.Store

	// ExecuteInTx runs fn with all store mutations made through this
	// provider scoped to a single transaction, where the backend
	// supports one.
	ExecuteInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type memoryProvider struct {
	configStore
	courseStore
	learnerStore
	enrollmentStore
	rewardStore
}

// NewMemoryProvider returns a Provider backed entirely by in-memory stores.
func NewMemoryProvider() Provider {
	return &memoryProvider{
		configStore:     config_memory.New(),
		courseStore:     course_memory.New(),
		learnerStore:    learner_memory.New(),
		enrollmentStore: enrollment_memory.New(),
		rewardStore:     reward_memory.New(),
	}
}

// ExecuteInTx implements Provider.ExecuteInTx. Memory stores have no
// transaction scope, so fn runs directly. Atomicity comes from the
// executor serializing instruction execution.
func (p *memoryProvider) ExecuteInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type postgresProvider struct {
	configStore
	courseStore
	learnerStore
	enrollmentStore
	rewardStore

	db *sqlx.DB
}

// NewPostgresProvider returns a Provider backed by Postgres stores sharing
// a single connection pool.
func NewPostgresProvider(db *sql.DB) Provider {
	return &postgresProvider{
		configStore:     config_postgres.New(db),
		courseStore:     course_postgres.New(db),
		learnerStore:    learner_postgres.New(db),
		enrollmentStore: enrollment_postgres.New(db),
		rewardStore:     reward_postgres.New(db),

		db: sqlx.NewDb(db, "pgx"),
	}
}

// ExecuteInTx implements Provider.ExecuteInTx
func (p *postgresProvider) ExecuteInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return pg.ExecuteTxWithinCtx(ctx, p.db, sql.LevelDefault, fn)
}
