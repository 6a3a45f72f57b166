package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// AddJob inserts a River job. Inside a transaction the job is inserted with
// InsertTx so it only becomes visible, and workable, after Commit.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		client, cerr := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
		if cerr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cerr)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		client, cerr := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if cerr != nil {
			return false, fmt.Errorf("could not create river queue client: %w", cerr)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("unsupported database handle %T", p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert job: %w", err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
