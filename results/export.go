package results

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

// BuildCSV renders the results as a spreadsheet-friendly CSV. One row per
// participant in rank order; the Special Awards column is present only
// when the event resolved any awards.
func BuildCSV(res *EventResults) ([]byte, error) {
	awardsWon := make(map[string][]string)
	for _, aw := range res.Awards {
		if aw.Winner != nil {
			awardsWon[aw.Winner.ParticipantID] = append(awardsWon[aw.Winner.ParticipantID], aw.AwardName)
		}
	}

	header := []string{"Rank", "Participant", "Average Score", "Judge Count", "Individual Scores"}
	withAwards := len(res.Awards) > 0
	if withAwards {
		header = append(header, "Special Awards")
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range res.Results {
		individual := make([]string, len(r.JudgeScores))
		for i, js := range r.JudgeScores {
			individual[i] = fmt.Sprintf("%s: %.2f", js.JudgeEmail, js.TotalScore)
		}
		row := []string{
			strconv.Itoa(r.Rank),
			r.ParticipantName,
			fmt.Sprintf("%.2f", r.AverageScore),
			strconv.Itoa(r.JudgeCount),
			strings.Join(individual, "; "),
		}
		if withAwards {
			row = append(row, strings.Join(awardsWon[r.ParticipantID], "; "))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportCSV builds the event's results CSV, gzips it and uploads it to the
// export bucket. Returns the object URL.
func (s *ResultsSrvc) ExportCSV(ctx context.Context, eventID string) (string, error) {
	if s.exportBucket == nil {
		return "", newErrExportNotConfigured()
	}

	res, err := s.GetResults(ctx, eventID)
	if err != nil {
		return "", err
	}

	csvBytes, err := BuildCSV(res)
	if err != nil {
		errMsg := fmt.Errorf("error building csv for event %s: %w", eventID, err)
		return "", newErrInternalSE().SetDebug(errMsg)
	}

	compressed := new(bytes.Buffer)
	gz := gzip.NewWriter(compressed)
	if _, err := gz.Write(csvBytes); err != nil {
		errMsg := fmt.Errorf("error compressing csv for event %s: %w", eventID, err)
		return "", newErrInternalSE().SetDebug(errMsg)
	}
	if err := gz.Close(); err != nil {
		errMsg := fmt.Errorf("error compressing csv for event %s: %w", eventID, err)
		return "", newErrInternalSE().SetDebug(errMsg)
	}

	key := fmt.Sprintf("exports/%s/results-%s.csv.gz", eventID, time.Now().Format("20060102-150405"))
	url, err := s.exportBucket.Upload(compressed.Bytes(), key, "application/gzip")
	if err != nil {
		errMsg := fmt.Errorf("error uploading csv for event %s: %w", eventID, err)
		return "", newErrInternalSE().SetDebug(errMsg)
	}
	return url, nil
}
