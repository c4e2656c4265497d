package parser

import (
	"github.com/tutortrack/tutortrack/internal/domain/lesson"
	"github.com/tutortrack/tutortrack/internal/domain/shared"
	"github.com/tutortrack/tutortrack/internal/engine/command"
)

func parseAddLesson(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixName, PrefixDay, PrefixTime, PrefixLocation)
	if err := mm.VerifyNoDuplicatePrefixes(PrefixName, PrefixDay, PrefixTime, PrefixLocation); err != nil {
		return nil, rewrap(err, command.AddLessonUsage)
	}

	index, err := ParseIndex(mm.Preamble())
	if err != nil {
		return nil, rewrap(err, command.AddLessonUsage)
	}
	rawName, err := requireValue(mm, PrefixName, command.AddLessonUsage)
	if err != nil {
		return nil, err
	}
	rawDay, err := requireValue(mm, PrefixDay, command.AddLessonUsage)
	if err != nil {
		return nil, err
	}
	rawTime, err := requireValue(mm, PrefixTime, command.AddLessonUsage)
	if err != nil {
		return nil, err
	}
	rawLocation, err := requireValue(mm, PrefixLocation, command.AddLessonUsage)
	if err != nil {
		return nil, err
	}

	name, err := shared.NewLessonName(rawName)
	if err != nil {
		return nil, rewrap(err, command.AddLessonUsage)
	}
	day, err := shared.NewWeekDay(rawDay)
	if err != nil {
		return nil, rewrap(err, command.AddLessonUsage)
	}
	at, err := shared.NewClockTime(rawTime)
	if err != nil {
		return nil, rewrap(err, command.AddLessonUsage)
	}
	location, err := shared.NewLocation(rawLocation)
	if err != nil {
		return nil, rewrap(err, command.AddLessonUsage)
	}

	return command.AddLesson{Index: index, Lesson: lesson.New(name, day, at, location)}, nil
}

func parseMark(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixStatus)
	if err := mm.VerifyNoDuplicatePrefixes(PrefixStatus); err != nil {
		return nil, rewrap(err, command.MarkUsage)
	}

	index, err := ParseIndex(mm.Preamble())
	if err != nil {
		return nil, rewrap(err, command.MarkUsage)
	}
	rawStatus, err := requireValue(mm, PrefixStatus, command.MarkUsage)
	if err != nil {
		return nil, err
	}
	status, err := lesson.NewAttendanceStatus(rawStatus)
	if err != nil {
		return nil, rewrap(err, command.MarkUsage)
	}

	return command.Mark{Index: index, Status: status}, nil
}
