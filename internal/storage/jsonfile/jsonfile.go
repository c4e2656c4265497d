// Package jsonfile persists the full student list to a single JSON document.
// Every record is rebuilt through the domain constructors on load, so a
// hand-edited or corrupted file is rejected with a field-level error instead
// of leaking invalid state into the model.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tutortrack/tutortrack/internal/domain/finance"
	"github.com/tutortrack/tutortrack/internal/domain/lesson"
	"github.com/tutortrack/tutortrack/internal/domain/person"
	"github.com/tutortrack/tutortrack/internal/domain/shared"
	"github.com/tutortrack/tutortrack/internal/model"
)

// Payment timestamps persist as zone-less date and time fields, always in
// UTC, so reloading under a different host zone never shifts the instant.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Store reads and writes the student list at a fixed file path.
type Store struct {
	path string
}

// New creates a Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

type fileRecord struct {
	Students []personRecord `json:"students"`
}

type personRecord struct {
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Email   string         `json:"email"`
	Address string         `json:"address"`
	Tags    []string       `json:"tags,omitempty"`
	Lesson  *lessonRecord  `json:"lesson,omitempty"`
	Finance *financeRecord `json:"finance,omitempty"`
}

type lessonRecord struct {
	Name             string `json:"name"`
	Weekday          string `json:"weekday"`
	Time             string `json:"time"`
	Location         string `json:"location"`
	TotalLessons     int    `json:"totalLessons"`
	TotalAttendances int    `json:"totalAttendances"`
}

type financeRecord struct {
	OwedAmount string          `json:"owedAmount"`
	History    []paymentRecord `json:"history,omitempty"`
	Plan       *planRecord     `json:"plan,omitempty"`
	Overdue    bool            `json:"overdue,omitempty"`
}

type paymentRecord struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

type planRecord struct {
	Type string `json:"type"`
	Rate string `json:"rate"`
}

// Load reads the student list from disk. A missing file is not an error: the
// application starts with an empty list and creates the file on first save.
func (s *Store) Load() ([]person.Person, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, shared.WrapError("storage", "load", shared.ErrInvalidState, "could not read data file", err)
	}

	var file fileRecord
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, shared.WrapError("storage", "load", shared.ErrInvalidFormat, "data file is not valid JSON", err)
	}

	persons := make([]person.Person, 0, len(file.Students))
	for i, rec := range file.Students {
		p, err := rec.toDomain()
		if err != nil {
			return nil, shared.WrapError("storage", "load", shared.ErrInvalidFormat,
				fmt.Sprintf("invalid student record at index %d", i), err)
		}
		persons = append(persons, p)
	}
	return persons, nil
}

// Save writes the full student list atomically: the document lands in a
// temporary file first and replaces the target with a rename, so a crash
// mid-write never truncates existing data.
func (s *Store) Save(m *model.Model) error {
	persons := m.Persons()
	file := fileRecord{Students: make([]personRecord, 0, len(persons))}
	for _, p := range persons {
		file.Students = append(file.Students, toRecord(p))
	}

	raw, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return shared.WrapError("storage", "save", shared.ErrInvalidState, "could not encode student data", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return shared.WrapError("storage", "save", shared.ErrInvalidState, "could not create data directory", err)
	}
	tmp, err := os.CreateTemp(dir, ".tutortrack-*.json")
	if err != nil {
		return shared.WrapError("storage", "save", shared.ErrInvalidState, "could not create temporary file", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return shared.WrapError("storage", "save", shared.ErrInvalidState, "could not write student data", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return shared.WrapError("storage", "save", shared.ErrInvalidState, "could not flush student data", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return shared.WrapError("storage", "save", shared.ErrInvalidState, "could not replace data file", err)
	}
	return nil
}

func toRecord(p person.Person) personRecord {
	rec := personRecord{
		Name:    p.Name().String(),
		Phone:   p.Phone().String(),
		Email:   p.Email().String(),
		Address: p.Address().String(),
	}
	for _, t := range p.Tags() {
		rec.Tags = append(rec.Tags, t.String())
	}
	if l, ok := p.Lesson(); ok {
		rec.Lesson = &lessonRecord{
			Name:             l.Name().String(),
			Weekday:          l.Day().String(),
			Time:             l.Time().String(),
			Location:         l.Location().String(),
			TotalLessons:     l.Attendance().Total(),
			TotalAttendances: l.Attendance().Attended(),
		}
	}
	if f, ok := p.Finance(); ok {
		fr := &financeRecord{
			OwedAmount: f.Owed().String(),
			Overdue:    f.IsOverdue(),
		}
		for _, e := range f.History() {
			at := e.At().UTC()
			fr.History = append(fr.History, paymentRecord{
				ID:     e.ID(),
				Date:   at.Format(dateLayout),
				Time:   at.Format(timeLayout),
				Amount: e.Amount().String(),
				Note:   e.Note(),
			})
		}
		if plan, ok := f.Plan(); ok {
			fr.Plan = &planRecord{
				Type: plan.Cadence.Unit(),
				Rate: plan.Rate.String(),
			}
		}
		rec.Finance = fr
	}
	return rec
}

func (rec personRecord) toDomain() (person.Person, error) {
	name, err := shared.NewName(rec.Name)
	if err != nil {
		return person.Person{}, err
	}
	phone, err := shared.NewPhone(rec.Phone)
	if err != nil {
		return person.Person{}, err
	}
	email, err := shared.NewEmail(rec.Email)
	if err != nil {
		return person.Person{}, err
	}
	address, err := shared.NewAddress(rec.Address)
	if err != nil {
		return person.Person{}, err
	}
	tags := make([]shared.Tag, 0, len(rec.Tags))
	for _, raw := range rec.Tags {
		t, err := shared.NewTag(raw)
		if err != nil {
			return person.Person{}, err
		}
		tags = append(tags, t)
	}

	var lsn *lesson.Lesson
	if rec.Lesson != nil {
		l, err := rec.Lesson.toDomain()
		if err != nil {
			return person.Person{}, err
		}
		lsn = &l
	}

	var fin *finance.Finance
	if rec.Finance != nil {
		f, err := rec.Finance.toDomain()
		if err != nil {
			return person.Person{}, err
		}
		fin = &f
	}

	return person.Restore(name, phone, email, address, tags, lsn, fin), nil
}

func (rec *lessonRecord) toDomain() (lesson.Lesson, error) {
	name, err := shared.NewLessonName(rec.Name)
	if err != nil {
		return lesson.Lesson{}, err
	}
	day, err := shared.NewWeekDay(rec.Weekday)
	if err != nil {
		return lesson.Lesson{}, err
	}
	at, err := shared.NewClockTime(rec.Time)
	if err != nil {
		return lesson.Lesson{}, err
	}
	location, err := shared.NewLocation(rec.Location)
	if err != nil {
		return lesson.Lesson{}, err
	}
	attendance, err := lesson.NewAttendance(rec.TotalLessons, rec.TotalAttendances)
	if err != nil {
		return lesson.Lesson{}, err
	}
	return lesson.Restore(name, day, at, location, attendance), nil
}

func (rec *financeRecord) toDomain() (finance.Finance, error) {
	owed, err := shared.NewAmount(rec.OwedAmount)
	if err != nil {
		return finance.Finance{}, err
	}

	history := make([]finance.PaymentEntry, 0, len(rec.History))
	for _, pr := range rec.History {
		at, err := time.ParseInLocation(dateLayout+" "+timeLayout, pr.Date+" "+pr.Time, time.UTC)
		if err != nil {
			return finance.Finance{}, err
		}
		amount, err := shared.NewAmount(pr.Amount)
		if err != nil {
			return finance.Finance{}, err
		}
		history = append(history, finance.RestorePaymentEntry(pr.ID, at, amount, pr.Note))
	}

	var plan *finance.TuitionPlan
	if rec.Plan != nil {
		cadence, err := finance.NewPlanCadence(rec.Plan.Type)
		if err != nil {
			return finance.Finance{}, err
		}
		rate, err := shared.NewAmount(rec.Plan.Rate)
		if err != nil {
			return finance.Finance{}, err
		}
		p, err := finance.NewTuitionPlan(cadence, rate)
		if err != nil {
			return finance.Finance{}, err
		}
		plan = &p
	}

	return finance.Restore(owed, history, plan, rec.Overdue), nil
}
