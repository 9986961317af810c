// Package store connects to the data store and manages workouts, plans and
// the workout in progress
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/lift/internal/apperr"
	"github.com/ayoisaiah/lift/internal/models"
	"github.com/ayoisaiah/lift/internal/osutil"
)

const bucketName = "lift"

// Keys under which each part of the state is stored.
const (
	KeyHistory       = "history"
	KeyCatalog       = "catalog"
	KeyCustomPlans   = "customPlans"
	KeyActiveSession = "activeSessionSnapshot"
)

var (
	// ErrNotFound is returned when a key has never been written.
	ErrNotFound = errors.New("key not found")

	errLiftRunning = &apperr.Error{
		Message: "is lift already running? Only one instance can be active at a time",
	}

	errDecodeValue = &apperr.Error{
		Message: "unable to decode %s",
	}
)

// op is a single write applied inside a transaction. A nil value deletes the
// key.
type op struct {
	key   string
	value []byte
}

// backend is the raw key-value layer under the typed methods.
type backend interface {
	get(key string) ([]byte, error)
	apply(ops ...op) error
}

// kv implements the typed part of DB on top of a backend.
type kv struct {
	backend
}

func (s kv) load(key string, v any) error {
	b, err := s.get(key)
	if err != nil {
		return err
	}

	if len(b) == 0 {
		return ErrNotFound
	}

	if err := json.Unmarshal(b, v); err != nil {
		return errDecodeValue.Fmt(key).Wrap(err)
	}

	return nil
}

func put(key string, v any) (op, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return op{}, err
	}

	return op{key: key, value: b}, nil
}

func (s kv) save(key string, v any) error {
	o, err := put(key, v)
	if err != nil {
		return err
	}

	return s.apply(o)
}

func (s kv) History() ([]models.WorkoutRecord, error) {
	var h []models.WorkoutRecord

	err := s.load(KeyHistory, &h)

	return h, err
}

func (s kv) SaveHistory(history []models.WorkoutRecord) error {
	return s.save(KeyHistory, history)
}

func (s kv) DeleteHistory() error {
	return s.apply(op{key: KeyHistory})
}

func (s kv) Catalog() (models.ExerciseCatalog, error) {
	var c models.ExerciseCatalog

	err := s.load(KeyCatalog, &c)

	return c, err
}

func (s kv) SaveCatalog(catalog models.ExerciseCatalog) error {
	return s.save(KeyCatalog, catalog)
}

func (s kv) CustomPlans() ([]models.CustomPlan, error) {
	var p []models.CustomPlan

	err := s.load(KeyCustomPlans, &p)

	return p, err
}

func (s kv) SaveCustomPlans(plans []models.CustomPlan) error {
	if plans == nil {
		plans = []models.CustomPlan{}
	}

	return s.save(KeyCustomPlans, plans)
}

func (s kv) ActiveSession() (*models.ActiveSession, error) {
	var sess models.ActiveSession

	err := s.load(KeyActiveSession, &sess)
	if err != nil {
		return nil, err
	}

	return &sess, nil
}

func (s kv) SaveActiveSession(sess *models.ActiveSession) error {
	if sess == nil {
		return s.DeleteActiveSession()
	}

	return s.save(KeyActiveSession, sess)
}

func (s kv) DeleteActiveSession() error {
	return s.apply(op{key: KeyActiveSession})
}

func (s kv) CommitWorkout(history []models.WorkoutRecord) error {
	o, err := put(KeyHistory, history)
	if err != nil {
		return err
	}

	return s.apply(o, op{key: KeyActiveSession})
}

func (s kv) Export() (*Dump, error) {
	var d Dump

	var err error

	d.History, err = s.History()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	catalog, err := s.Catalog()
	if err == nil {
		d.Catalog = &catalog
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	d.CustomPlans, err = s.CustomPlans()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	d.ActiveSession, err = s.ActiveSession()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return &d, nil
}

func (s kv) Import(dump *Dump) error {
	ops := make([]op, 0, 4)

	add := func(key string, v any, keep bool) error {
		if !keep {
			ops = append(ops, op{key: key})
			return nil
		}

		o, err := put(key, v)
		if err != nil {
			return err
		}

		ops = append(ops, o)

		return nil
	}

	err := add(KeyHistory, dump.History, len(dump.History) > 0)
	if err != nil {
		return err
	}

	err = add(KeyCatalog, dump.Catalog, dump.Catalog != nil)
	if err != nil {
		return err
	}

	plans := dump.CustomPlans
	if plans == nil {
		plans = []models.CustomPlan{}
	}

	err = add(KeyCustomPlans, plans, true)
	if err != nil {
		return err
	}

	err = add(KeyActiveSession, dump.ActiveSession, dump.ActiveSession != nil)
	if err != nil {
		return err
	}

	return s.apply(ops...)
}

// Client is a BoltDB database client.
type Client struct {
	kv
	db *bolt.DB
}

type boltBackend struct {
	db *bolt.DB
}

func (b boltBackend) get(key string) ([]byte, error) {
	var v []byte

	err := b.db.View(func(tx *bolt.Tx) error {
		v = bytes.Clone(tx.Bucket([]byte(bucketName)).Get([]byte(key)))
		return nil
	})

	return v, err
}

func (b boltBackend) apply(ops ...op) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))

		for _, o := range ops {
			var err error
			if o.value == nil {
				err = bucket.Delete([]byte(o.key))
			} else {
				err = bucket.Put([]byte(o.key), o.value)
			}

			if err != nil {
				return err
			}
		}

		return nil
	})
}

// Close ends the database connection.
func (c *Client) Close() error {
	return c.db.Close()
}

// Path returns the location of the database file.
func (c *Client) Path() string {
	return c.db.Path()
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = osutil.FilePermission

	err := os.MkdirAll(filepath.Dir(pathToDB), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errLiftRunning
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	// Create the bucket for storing data if it does not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		kv: kv{boltBackend{db}},
		db: db,
	}, nil
}
