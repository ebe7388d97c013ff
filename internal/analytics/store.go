// Package analytics records privacy-conscious visit statistics and which
// detail panels visitors open.
package analytics

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Retention is how long visitor and detail-view rows are kept.
const Retention = 365 * 24 * time.Hour

// VisitorMetric is one tracked page view. The IP is stored hashed.
type VisitorMetric struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// DetailStat counts panel opens for one entity.
type DetailStat struct {
	Kind     string `json:"kind"`
	EntityID string `json:"entity_id"`
	Views    int64  `json:"views"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TotalDetailViews int64           `json:"total_detail_views"`
	TopDetails       []DetailStat    `json:"top_details"`
	RecentVisitors   []VisitorMetric `json:"recent_visitors"`
}

// Store persists analytics in SQLite.
type Store struct {
	db   *sql.DB
	salt string
	now  func() time.Time
	log  *zap.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_ts ON visitors(ts);
CREATE TABLE IF NOT EXISTS detail_views (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	kind TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	locale TEXT NOT NULL,
	ts INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS detail_views_entity ON detail_views(kind, entity_id);
`

// Open opens (or creates) the database at path and migrates the schema.
func Open(ctx context.Context, path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", path)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create analytics schema")
	}
	s := &Store{db: db, salt: newSalt(), now: time.Now, log: log}
	log.Info("privacy: visitor tracking enabled with hashed IP addresses", zap.String("db", path))
	return s, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

func newSalt() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}

// HashIP hashes ip with the per-process salt. The same ip hashes to the same
// value for the lifetime of the process.
func (s *Store) HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + s.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, ip, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, ts) VALUES (?, ?, ?, ?)`,
		s.HashIP(ip), userAgent, path, s.now().Unix())
	return errors.Wrap(err, "record visit")
}

// RecordDetailView stores one panel open.
func (s *Store) RecordDetailView(ctx context.Context, kind, entityID, locale string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO detail_views (kind, entity_id, locale, ts) VALUES (?, ?, ?, ?)`,
		kind, entityID, locale, s.now().Unix())
	return errors.Wrap(err, "record detail view")
}

// Cleanup deletes rows older than Retention and returns how many went.
func (s *Store) Cleanup(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-Retention).Unix()
	var total int64
	for _, table := range []string{"visitors", "detail_views"} {
		res, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE ts < ?`, cutoff)
		if err != nil {
			return total, errors.Wrapf(err, "cleanup %s", table)
		}
		n, _ := res.RowsAffected()
		total += n
	}
	if total > 0 {
		s.log.Info("privacy cleanup removed old records", zap.Int64("rows", total))
	}
	return total, nil
}

// Stats builds the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	st := &Stats{}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&st.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&st.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&st.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{midnight.Unix()}},
		{&st.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE ts >= ?`, []any{now.Add(-7 * 24 * time.Hour).Unix()}},
		{&st.TotalDetailViews, `SELECT COUNT(*) FROM detail_views`, nil},
	}
	for _, q := range counts {
		if err := s.db.QueryRowContext(ctx, q.query, q.args...).Scan(q.dst); err != nil {
			return nil, errors.Wrap(err, "count")
		}
	}

	top, err := s.TopDetails(ctx, 10)
	if err != nil {
		return nil, err
	}
	st.TopDetails = top

	recent, err := s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	st.RecentVisitors = recent
	return st, nil
}

// TopDetails returns the most opened entities.
func (s *Store) TopDetails(ctx context.Context, limit int) ([]DetailStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT kind, entity_id, COUNT(*) AS views
		FROM detail_views
		GROUP BY kind, entity_id
		ORDER BY views DESC, entity_id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query top details")
	}
	defer rows.Close()

	var out []DetailStat
	for rows.Next() {
		var d DetailStat
		if err := rows.Scan(&d.Kind, &d.EntityID, &d.Views); err != nil {
			return nil, errors.Wrap(err, "scan detail stat")
		}
		out = append(out, d)
	}
	return out, errors.Wrap(rows.Err(), "iterate top details")
}

// RecentVisitors returns the latest page views, newest first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]VisitorMetric, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), ts
		FROM visitors
		ORDER BY ts DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "query recent visitors")
	}
	defer rows.Close()

	var out []VisitorMetric
	for rows.Next() {
		var v VisitorMetric
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, errors.Wrap(err, "scan visitor")
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		out = append(out, v)
	}
	return out, errors.Wrap(rows.Err(), "iterate visitors")
}
