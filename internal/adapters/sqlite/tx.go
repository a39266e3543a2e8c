package sqlite

import (
	"database/sql"

	"tkbuilder/internal/ports"
)

// snapshotTx groups the writes of one library operation
type snapshotTx struct {
	tx *sql.Tx
}

// Insert adds a snapshot row holding the encoded document
func (t *snapshotTx) Insert(snap *ports.Snapshot, document []byte) error {
	_, err := t.tx.Exec(`
		INSERT INTO snapshots (id, name, title, widgets, document, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snap.ID, snap.Name, snap.Title, snap.Widgets, string(document), snap.CreatedAt.UnixMilli())
	return err
}

// DeleteByName removes the snapshot with the given name, if any
func (t *snapshotTx) DeleteByName(name string) error {
	_, err := t.deleteCount(name)
	return err
}

func (t *snapshotTx) deleteCount(name string) (int64, error) {
	res, err := t.tx.Exec(`DELETE FROM snapshots WHERE name = ?`, name)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Commit commits the transaction
func (t *snapshotTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *snapshotTx) Rollback() error {
	return t.tx.Rollback()
}
