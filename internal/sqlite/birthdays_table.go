package sqlite

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mesh-intelligence/birthdays/pkg/dates"
	"github.com/mesh-intelligence/birthdays/pkg/types"
)

const (
	tableName  = "birthdays"
	allColumns = "id, name, date_timestamp"
)

// model is the row shape of the birthdays table. Dates are stored as the
// Unix timestamp of midnight UTC.
type model struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	DateTimestamp int64  `db:"date_timestamp"`
}

func toTimestamp(d dates.Date) int64 {
	return d.Time().Unix()
}

func fromTimestamp(ts int64) dates.Date {
	return dates.FromTime(time.Unix(ts, 0).UTC())
}

func fromModel(m *model) types.Birthday {
	return types.Birthday{
		ID:   m.ID,
		Name: m.Name,
		Date: fromTimestamp(m.DateTimestamp),
	}
}

// Add implements types.Store.Add.
func (b *Backend) Add(name string, date dates.Date) (types.Birthday, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return types.Birthday{}, err
	}

	m, err := dbInsert(db, name, toTimestamp(date))
	if err != nil {
		b.log.Error("insert failed", "name", name, "error", err)
		return types.Birthday{}, types.Persistf(err, "insert birthday")
	}

	b.log.Debug("inserted", "id", m.ID)
	return fromModel(m), nil
}

// GetAll implements types.Store.GetAll.
func (b *Backend) GetAll() ([]types.Birthday, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	models, err := dbGetAll(db)
	if err != nil {
		b.log.Error("select failed", "error", err)
		return nil, types.Persistf(err, "list birthdays")
	}

	res := make([]types.Birthday, len(models))
	for i := range models {
		res[i] = fromModel(&models[i])
	}
	return res, nil
}

// Remove implements types.Store.Remove. The row is deleted and returned by a
// single DELETE ... RETURNING statement.
func (b *Backend) Remove(id int64) (*types.Birthday, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	m, err := dbDelete(db, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		b.log.Error("delete failed", "id", id, "error", err)
		return nil, types.Persistf(err, "delete birthday %d", id)
	}

	b.log.Debug("deleted", "id", id)
	res := fromModel(m)
	return &res, nil
}

func dbInsert(db *sqlx.DB, name string, ts int64) (*model, error) {
	var m model
	query := `INSERT INTO ` + tableName + ` (name, date_timestamp)
		VALUES (?, ?)
		RETURNING ` + allColumns
	if err := db.QueryRowx(query, name, ts).StructScan(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func dbGetAll(db *sqlx.DB) ([]model, error) {
	var res []model
	query := `SELECT ` + allColumns + ` FROM ` + tableName + ` ORDER BY id`
	if err := db.Select(&res, query); err != nil {
		return nil, err
	}
	return res, nil
}

func dbDelete(db *sqlx.DB, id int64) (*model, error) {
	var m model
	query := `DELETE FROM ` + tableName + ` WHERE id = ? RETURNING ` + allColumns
	if err := db.Get(&m, query, id); err != nil {
		return nil, err
	}
	return &m, nil
}
