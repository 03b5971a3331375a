package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/albapepper/hoopstats-data/internal/config"
	"github.com/albapepper/hoopstats-data/internal/db"
	"github.com/albapepper/hoopstats-data/internal/record"
)

// maxRowsPerStatement caps a single multi-row INSERT even when the dialect
// would accept more bind parameters.
const maxRowsPerStatement = 1000

// Table binds a destination table: column order, natural key, and an
// optional timestamp column refreshed on every write.
type Table struct {
	Name        string
	Columns     []string
	Key         []string
	TouchColumn string
}

var (
	GameLogsTable = Table{
		Name:    config.GameLogsTable,
		Columns: record.GameLogColumns,
		Key:     []string{"PLAYER_ID", "GAME_ID"},
	}
	MetadataTable = Table{
		Name:        config.MetadataTable,
		Columns:     record.MetadataColumns,
		Key:         []string{"PLAYER_ID"},
		TouchColumn: "UPDATED_AT",
	}
)

// keyIndexes returns the positions of the key columns within Columns.
func (t Table) keyIndexes() []int {
	idx := make([]int, 0, len(t.Key))
	for _, k := range t.Key {
		for i, c := range t.Columns {
			if c == k {
				idx = append(idx, i)
				break
			}
		}
	}
	return idx
}

// rowsPerStatement is how many rows fit under the dialect's parameter ceiling.
func (t Table) rowsPerStatement(d db.Dialect) int {
	n := d.MaxParams / len(t.Columns)
	if n > maxRowsPerStatement {
		n = maxRowsPerStatement
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Statement renders a multi-row upsert for rows rows. Non-key columns are
// always overwritten with the incoming values.
func (t Table) Statement(d db.Dialect, rows int) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(t.Name)
	b.WriteString(" (")
	b.WriteString(strings.Join(t.Columns, ", "))
	b.WriteString(") VALUES ")

	n := 1
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for c := range t.Columns {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(d.Placeholder(n))
			n++
		}
		b.WriteByte(')')
	}

	b.WriteString(" ON CONFLICT (")
	b.WriteString(strings.Join(t.Key, ", "))
	b.WriteString(") DO UPDATE SET ")

	isKey := make(map[string]bool, len(t.Key))
	for _, k := range t.Key {
		isKey[k] = true
	}
	sets := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !isKey[c] {
			sets = append(sets, c+" = EXCLUDED."+c)
		}
	}
	if t.TouchColumn != "" {
		sets = append(sets, t.TouchColumn+" = CURRENT_TIMESTAMP")
	}
	b.WriteString(strings.Join(sets, ", "))
	return b.String()
}

// Upserter writes normalized batches with insert-or-update semantics.
type Upserter struct {
	connect db.ConnectFunc
	logger  *slog.Logger
}

// NewUpserter creates an Upserter that opens a fresh connection per call.
func NewUpserter(connect db.ConnectFunc, logger *slog.Logger) *Upserter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Upserter{connect: connect, logger: logger}
}

// UpsertGameLogs writes game logs keyed on (PLAYER_ID, GAME_ID).
func (u *Upserter) UpsertGameLogs(ctx context.Context, logs []record.GameLog) (int64, error) {
	rows := make([][]any, len(logs))
	for i, l := range logs {
		rows[i] = bindGameLog(l)
	}
	return u.Upsert(ctx, GameLogsTable, rows)
}

// UpsertMetadata writes player metadata keyed on PLAYER_ID and refreshes
// UPDATED_AT on every row.
func (u *Upserter) UpsertMetadata(ctx context.Context, players []record.PlayerMetadata) (int64, error) {
	rows := make([][]any, len(players))
	for i, p := range players {
		rows[i] = bindMetadata(p)
	}
	return u.Upsert(ctx, MetadataTable, rows)
}

// Upsert sends bound rows to table inside one transaction on a fresh
// connection. Rows repeating a key collapse to the last one, which is what
// the store would keep anyway. It returns the number of rows sent.
func (u *Upserter) Upsert(ctx context.Context, table Table, rows [][]any) (int64, error) {
	rows = lastPerKey(rows, table.keyIndexes())
	if len(rows) == 0 {
		u.logger.Info("Nothing to upsert", "table", table.Name)
		return 0, nil
	}

	conn, err := u.connect(ctx)
	if err != nil {
		return 0, fmt.Errorf("connect for %s upsert: %w", table.Name, err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin %s upsert: %w", table.Name, err)
	}
	defer tx.Rollback()

	chunk := table.rowsPerStatement(conn.Dialect)
	var affected int64
	for start := 0; start < len(rows); start += chunk {
		end := min(start+chunk, len(rows))
		batch := rows[start:end]

		args := make([]any, 0, len(batch)*len(table.Columns))
		for _, r := range batch {
			args = append(args, r...)
		}

		res, err := tx.ExecContext(ctx, table.Statement(conn.Dialect, len(batch)), args...)
		if err != nil {
			return 0, fmt.Errorf("upsert %s rows %d-%d: %w", table.Name, start, end-1, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			affected += n
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit %s upsert: %w", table.Name, err)
	}

	u.logger.Info("Inserted/Updated rows", "table", table.Name, "rows", len(rows), "affected", affected)
	return int64(len(rows)), nil
}

// lastPerKey drops earlier rows whose key repeats later in the batch; a
// single INSERT may not touch the same key twice. Order of first appearance
// is kept.
func lastPerKey(rows [][]any, keyIdx []int) [][]any {
	if len(keyIdx) == 0 {
		return rows
	}
	pos := make(map[string]int, len(rows))
	out := make([][]any, 0, len(rows))
	for _, r := range rows {
		parts := make([]string, len(keyIdx))
		for i, k := range keyIdx {
			parts[i] = fmt.Sprint(r[k])
		}
		key := strings.Join(parts, "\x00")
		if i, ok := pos[key]; ok {
			out[i] = r
			continue
		}
		pos[key] = len(out)
		out = append(out, r)
	}
	return out
}
