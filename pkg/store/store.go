// unit-converter/pkg/store/store.go
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jhunt/go-log"
	_ "modernc.org/sqlite"

	"github.com/sfun/alfred-unit-converter/pkg/units"
)

// ErrNotFound 表示数据库中没有该单位
var ErrNotFound = errors.New("conversion not found")

// Conversion 是持久化的一条用户自定义单位
type Conversion struct {
	Symbol    string
	Factor    float64
	Offset    float64
	UpdatedAt time.Time
}

// Store 把用户通过 AddConversion 注册的单位保存在 SQLite 中，使其在多次运行之间保留。
type Store struct {
	db *sql.DB
}

// Open 打开数据库连接并确保表已创建
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	log.Debugf("opened custom unit store %s", path)
	return &Store{db: db}, nil
}

// createTables 创建数据库表
func createTables(db *sql.DB) error {
	table := `
    CREATE TABLE IF NOT EXISTS conversions (
        symbol TEXT PRIMARY KEY, factor REAL NOT NULL, base_offset REAL NOT NULL, updated_at INTEGER
    );`
	_, err := db.Exec(table)
	return err
}

// Close 关闭数据库
func (s *Store) Close() error {
	return s.db.Close()
}

// Save 新增或覆盖一个单位
func (s *Store) Save(c Conversion) error {
	if c.Symbol == "" {
		return errors.New("empty unit symbol")
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now()
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO conversions (symbol, factor, base_offset, updated_at) VALUES (?, ?, ?, ?)`,
		c.Symbol, c.Factor, c.Offset, c.UpdatedAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to save conversion %s: %w", c.Symbol, err)
	}
	return nil
}

// Get 按符号查找一个单位
func (s *Store) Get(symbol string) (Conversion, error) {
	var c Conversion
	var updatedAt sql.NullInt64
	err := s.db.QueryRow(`SELECT symbol, factor, base_offset, updated_at FROM conversions WHERE symbol = ?`, symbol).
		Scan(&c.Symbol, &c.Factor, &c.Offset, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Conversion{}, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	if err != nil {
		return Conversion{}, err
	}
	if updatedAt.Valid {
		c.UpdatedAt = time.Unix(updatedAt.Int64, 0)
	}
	return c, nil
}

// List 返回所有单位，按符号排序
func (s *Store) List() ([]Conversion, error) {
	rows, err := s.db.Query(`SELECT symbol, factor, base_offset, updated_at FROM conversions ORDER BY symbol`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Conversion
	for rows.Next() {
		var c Conversion
		var updatedAt sql.NullInt64
		if err := rows.Scan(&c.Symbol, &c.Factor, &c.Offset, &updatedAt); err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			c.UpdatedAt = time.Unix(updatedAt.Int64, 0)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Delete 删除一个持久化的单位。内存中的注册表不受影响。
func (s *Store) Delete(symbol string) error {
	res, err := s.db.Exec(`DELETE FROM conversions WHERE symbol = ?`, symbol)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	return nil
}

// Clear 删除所有单位
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM conversions`)
	return err
}

// Apply 把数据库中所有单位注册到 r 中，返回注册的数量
func (s *Store) Apply(r *units.Registry) (int, error) {
	list, err := s.List()
	if err != nil {
		return 0, fmt.Errorf("failed to load custom conversions: %w", err)
	}
	for _, c := range list {
		r.AddConversion(c.Symbol, c.Factor, c.Offset)
	}
	log.Debugf("applied %d custom conversions", len(list))
	return len(list), nil
}
