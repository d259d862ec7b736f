package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ScoreEntry is a single leaderboard record: the score achieved and the
// date it was achieved
type ScoreEntry struct {
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// FormattedDate returns the entry date as dd/mm/yyyy
func (e ScoreEntry) FormattedDate() string {
	return e.Date.Format("02/01/2006")
}

// Before reports whether this entry ranks ahead of other: higher scores
// first, ties broken by earlier date
func (e ScoreEntry) Before(other ScoreEntry) bool {
	if e.Score != other.Score {
		return e.Score > other.Score
	}
	return e.Date.Before(other.Date)
}

// Leaderboard keeps the top scores of a session, capped at MaxTopScores
// entries. Scores of zero or below are never admitted.
type Leaderboard struct {
	entries []ScoreEntry
}

// NewLeaderboard creates an empty leaderboard
func NewLeaderboard() *Leaderboard {
	return &Leaderboard{}
}

// Add inserts a score achieved today. Returns whether the entry made the
// leaderboard.
func (l *Leaderboard) Add(score int, date time.Time) bool {
	if score <= 0 {
		return false
	}

	entry := ScoreEntry{Score: score, Date: date}
	l.entries = append(l.entries, entry)
	l.sortAndTrim()

	for _, e := range l.entries {
		if e == entry {
			return true
		}
	}
	return false
}

// Merge folds previously saved entries into the leaderboard, keeping the
// ranking rule and cap. Non-qualifying entries are dropped.
func (l *Leaderboard) Merge(entries []ScoreEntry) {
	for _, e := range entries {
		if e.Score > 0 {
			l.entries = append(l.entries, e)
		}
	}
	l.sortAndTrim()
}

// Entries returns the ranked entries, best first
func (l *Leaderboard) Entries() []ScoreEntry {
	out := make([]ScoreEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries currently held
func (l *Leaderboard) Len() int {
	return len(l.entries)
}

// Display returns a formatted listing of the top scores
func (l *Leaderboard) Display() string {
	if len(l.entries) == 0 {
		return "No top scores yet."
	}
	var b strings.Builder
	b.WriteString("--- Top Scores ---\n")
	for i, e := range l.entries {
		b.WriteString(fmt.Sprintf("#%d %d %s\n", i+1, e.Score, e.FormattedDate()))
	}
	return b.String()
}

func (l *Leaderboard) sortAndTrim() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Before(l.entries[j])
	})
	if len(l.entries) > MaxTopScores {
		l.entries = l.entries[:MaxTopScores]
	}
}
