package rcheckbook

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bryceac/rcheckbook/date"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

// Store is the persistent register: a SQLite database holding the ledger and
// its categories. Every mutating call is immediately durable; there is no
// deferred flush.
//
// At rest the amount is a signed decimal string (negative for withdrawals);
// the row adapters below are the only place that sign convention is applied.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens (creating and migrating if needed) the register at path.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &StorageError{Op: "create register directory", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Op: "open register", Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StorageError{Op: "ping register", Err: err}
	}
	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, &StorageError{Op: "migrate register", Err: err}
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the register file path.
func (s *Store) Path() string { return s.path }

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const recordColumns = `l.id, l.date, l.check_number, l.reconciled, l.vendor, l.memo, c.name, l.amount`

// scanRecord converts one at-rest row into the canonical unsigned-plus-enum
// form.
func scanRecord(row interface{ Scan(...any) error }) (Record, error) {
	var (
		rec      Record
		day      string
		checkNum sql.NullInt64
		category sql.NullString
		amount   string
	)
	if err := row.Scan(&rec.ID, &day, &checkNum, &rec.Transaction.Reconciled,
		&rec.Transaction.Vendor, &rec.Transaction.Memo, &category, &amount); err != nil {
		return Record{}, err
	}

	d, err := date.Parse(day)
	if err != nil {
		return Record{}, fmt.Errorf("record %s: %w", rec.ID, err)
	}
	rec.Transaction.Date = d
	rec.Transaction.CheckNumber = int(checkNum.Int64)
	rec.Transaction.Category = category.String

	signed, err := decimal.NewFromString(amount)
	if err != nil {
		return Record{}, fmt.Errorf("record %s: bad amount %q: %w", rec.ID, amount, err)
	}
	if signed.IsNegative() {
		rec.Transaction.Type = Withdrawal
		rec.Transaction.Amount = signed.Neg()
	} else {
		rec.Transaction.Type = Deposit
		rec.Transaction.Amount = signed
	}
	return rec, nil
}

// Add inserts a new record, registering its category first if unseen.
func (s *Store) Add(ctx context.Context, rec Record) error {
	if err := rec.Transaction.Validate(); err != nil {
		return &StorageError{Op: "add record", Err: err}
	}
	categoryID, err := s.categoryID(ctx, rec.Transaction.Category)
	if err != nil {
		return err
	}

	var checkNum sql.NullInt64
	if n := rec.Transaction.CheckNumber; n > 0 {
		checkNum = sql.NullInt64{Int64: int64(n), Valid: true}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO ledger (id, date, check_number, reconciled, vendor, memo, category_id, amount)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Transaction.Date.String(), checkNum, rec.Transaction.Reconciled,
		rec.Transaction.Vendor, rec.Transaction.Memo, categoryID,
		rec.Transaction.SignedAmount().String())
	if err != nil {
		return &StorageError{Op: "add record", Err: err}
	}
	return nil
}

// Get returns the record with the given id. The lookup is case-insensitive.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordColumns+`
		 FROM ledger l LEFT JOIN categories c ON c.id = l.category_id
		 WHERE l.id = ? COLLATE NOCASE`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, &StorageError{Op: "get record", Err: err}
	}
	return rec, nil
}

// TransactionPatch carries the fields of an update; nil fields keep their
// stored values.
type TransactionPatch struct {
	Date        *date.Date
	CheckNumber *int
	Category    *string
	Vendor      *string
	Memo        *string
	Amount      *decimal.Decimal
	Type        *TransactionType
	Reconciled  *bool
}

func (p TransactionPatch) apply(t Transaction) Transaction {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.CheckNumber != nil {
		t.CheckNumber = *p.CheckNumber
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Vendor != nil {
		t.Vendor = *p.Vendor
	}
	if p.Memo != nil {
		t.Memo = *p.Memo
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Reconciled != nil {
		t.Reconciled = *p.Reconciled
	}
	return t
}

// Update overwrites only the supplied fields of the record with the given id
// and persists the result. When the merged transaction is identical to the
// stored one the write is skipped. Returns ErrNotFound if the id is absent.
func (s *Store) Update(ctx context.Context, id string, patch TransactionPatch) (Record, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return Record{}, err
	}
	merged := patch.apply(current.Transaction)
	if merged.Equal(current.Transaction) {
		return current, nil
	}
	updated := Record{ID: current.ID, Transaction: merged}
	if err := s.write(ctx, updated); err != nil {
		return Record{}, err
	}
	return updated, nil
}

// write persists every transaction field of an existing record.
func (s *Store) write(ctx context.Context, rec Record) error {
	if err := rec.Transaction.Validate(); err != nil {
		return &StorageError{Op: "update record", Err: err}
	}
	categoryID, err := s.categoryID(ctx, rec.Transaction.Category)
	if err != nil {
		return err
	}
	var checkNum sql.NullInt64
	if n := rec.Transaction.CheckNumber; n > 0 {
		checkNum = sql.NullInt64{Int64: int64(n), Valid: true}
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE ledger
		 SET date = ?, check_number = ?, reconciled = ?, vendor = ?, memo = ?, category_id = ?, amount = ?
		 WHERE id = ? COLLATE NOCASE`,
		rec.Transaction.Date.String(), checkNum, rec.Transaction.Reconciled,
		rec.Transaction.Vendor, rec.Transaction.Memo, categoryID,
		rec.Transaction.SignedAmount().String(), rec.ID)
	if err != nil {
		return &StorageError{Op: "update record", Err: err}
	}
	return nil
}

// Remove deletes the record with the given id. A missing id is a no-op, not
// an error; callers that need to distinguish check existence first.
func (s *Store) Remove(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM ledger WHERE id = ? COLLATE NOCASE`, id); err != nil {
		return &StorageError{Op: "remove record", Err: err}
	}
	return nil
}

// Upsert is the batch-import entry point: it adds the record when its id is
// unseen, rewrites it when it exists with different content, and does nothing
// when an identical record is already stored. Re-running the same import is
// therefore idempotent per id.
func (s *Store) Upsert(ctx context.Context, rec Record) error {
	current, err := s.Get(ctx, rec.ID)
	if errors.Is(err, ErrNotFound) {
		return s.Add(ctx, rec)
	}
	if err != nil {
		return err
	}
	if current.Transaction.Equal(rec.Transaction) {
		return nil
	}
	return s.write(ctx, Record{ID: current.ID, Transaction: rec.Transaction})
}

// All returns every record in storage (insertion) order.
func (s *Store) All(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordColumns+`
		 FROM ledger l LEFT JOIN categories c ON c.id = l.category_id
		 ORDER BY l.rowid`)
	if err != nil {
		return nil, &StorageError{Op: "list records", Err: err}
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, &StorageError{Op: "list records", Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list records", Err: err}
	}
	return records, nil
}

// Ledger loads all records into a sorted in-memory view. Because All returns
// rows in rowid order and the ledger sort is stable, same-day records keep
// their storage order.
func (s *Store) Ledger(ctx context.Context) (*Ledger, error) {
	records, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return NewLedger(records...), nil
}

// SortedRecords returns the date-sorted view of the register.
func (s *Store) SortedRecords(ctx context.Context) ([]Record, error) {
	ledger, err := s.Ledger(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.Records(), nil
}

// Categories returns all registered category names, sorted
// case-insensitively.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM categories ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, &StorageError{Op: "list categories", Err: err}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &StorageError{Op: "list categories", Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list categories", Err: err}
	}
	return names, nil
}

// categoryID resolves a category name to its identifier, registering it on
// first use. Names differing only in case resolve to the same category: the
// NOCASE unique constraint makes the first spelling the canonical one.
// An empty name means uncategorized and resolves to NULL.
func (s *Store) categoryID(ctx context.Context, name string) (sql.NullInt64, error) {
	if name == "" {
		return sql.NullInt64{}, nil
	}
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE name = ? COLLATE NOCASE`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		res, err := s.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
		if err != nil {
			return sql.NullInt64{}, &StorageError{Op: "register category", Err: err}
		}
		id, err = res.LastInsertId()
		if err != nil {
			return sql.NullInt64{}, &StorageError{Op: "register category", Err: err}
		}
		return sql.NullInt64{Int64: id, Valid: true}, nil
	}
	if err != nil {
		return sql.NullInt64{}, &StorageError{Op: "lookup category", Err: err}
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}
