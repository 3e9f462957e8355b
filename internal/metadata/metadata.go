package metadata

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

const (
	lastConsumeTimeKey = "last_consume_time"
	leadKeyPrefix      = "lead:"
)

// LeadRecord marks a lead as delivered.
type LeadRecord struct {
	Id          string `json:"id"`
	Type        string `json:"type"`
	Email       string `json:"email"`
	ProcessedAt int64  `json:"processedAt"`
}

// MetadataDB is the consumer's local state, kept in badger.
type MetadataDB struct {
	db     *badger.DB
	logger *logrus.Entry
	// leadTTL bounds how long a lead id is remembered, 0 keeps it forever
	leadTTL time.Duration
}

func NewMetadataDB(dir string, leadTTL time.Duration, logger *logrus.Entry) (*MetadataDB, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, err
	}
	return &MetadataDB{
		db:      db,
		logger:  logger,
		leadTTL: leadTTL,
	}, nil
}

func (m *MetadataDB) Close() error {
	return m.db.Close()
}

func (m *MetadataDB) Get(key []byte) ([]byte, error) {
	var val []byte
	err := m.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (m *MetadataDB) Set(key, val []byte) error {
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

func (m *MetadataDB) Delete(key []byte) error {
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (m *MetadataDB) GetLastConsumeTime() (int64, error) {
	t, err := m.Get([]byte(lastConsumeTimeKey))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return strconv.ParseInt(string(t), 10, 64)
}

func (m *MetadataDB) SetLastConsumeTime(t int64) error {
	return m.Set([]byte(lastConsumeTimeKey), []byte(strconv.FormatInt(t, 10)))
}

// GetLead returns nil when the lead was never recorded or has expired.
func (m *MetadataDB) GetLead(id string) (*LeadRecord, error) {
	val, err := m.Get([]byte(leadKeyPrefix + id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	lead := &LeadRecord{}
	if err := json.Unmarshal(val, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (m *MetadataDB) SetLead(lead *LeadRecord) error {
	val, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(leadKeyPrefix+lead.Id), val)
		if m.leadTTL > 0 {
			e = e.WithTTL(m.leadTTL)
		}
		return txn.SetEntry(e)
	})
}

func (m *MetadataDB) DeleteLead(id string) error {
	return m.Delete([]byte(leadKeyPrefix + id))
}

func (m *MetadataDB) GetLeads() ([]*LeadRecord, error) {
	prefix := []byte(leadKeyPrefix)
	leads := make([]*LeadRecord, 0, 10)
	err := m.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 10
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			lead := &LeadRecord{}
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, lead)
			})
			if err != nil {
				m.logger.WithError(err).Errorf("unmarshal lead %s", item.Key())
			} else {
				leads = append(leads, lead)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leads, nil
}
