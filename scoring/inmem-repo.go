package scoring

import (
	"context"
	"sync"
)

type InMemScoreRepo struct {
	lock    sync.Mutex
	records map[string]ScoreRecord // by record id
}

func NewInMemScoreRepo() *InMemScoreRepo {
	return &InMemScoreRepo{
		records: make(map[string]ScoreRecord),
	}
}

func (m *InMemScoreRepo) GetByKey(ctx context.Context, eventID, judgeID, participantID string) (*ScoreRecord, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	for _, rec := range m.records {
		if rec.EventID == eventID && rec.JudgeID == judgeID && rec.ParticipantID == participantID {
			cp := copyRecord(rec)
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *InMemScoreRepo) Save(ctx context.Context, rec *ScoreRecord) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.records[rec.ID] = copyRecord(*rec)
	return nil
}

func (m *InMemScoreRepo) ListByEvent(ctx context.Context, eventID string) ([]ScoreRecord, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	records := make([]ScoreRecord, 0)
	for _, rec := range m.records {
		if rec.EventID == eventID {
			records = append(records, copyRecord(rec))
		}
	}
	return records, nil
}

func (m *InMemScoreRepo) ListByEventJudge(ctx context.Context, eventID, judgeID string) ([]ScoreRecord, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	records := make([]ScoreRecord, 0)
	for _, rec := range m.records {
		if rec.EventID == eventID && rec.JudgeID == judgeID {
			records = append(records, copyRecord(rec))
		}
	}
	return records, nil
}

func (m *InMemScoreRepo) DeleteByEvent(ctx context.Context, eventID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	for id, rec := range m.records {
		if rec.EventID == eventID {
			delete(m.records, id)
		}
	}
	return nil
}

func copyRecord(rec ScoreRecord) ScoreRecord {
	scores := make(map[string]float64, len(rec.Scores))
	for k, v := range rec.Scores {
		scores[k] = v
	}
	rec.Scores = scores
	return rec
}
