package parser

import (
	"strings"

	"github.com/tutortrack/tutortrack/internal/domain/person"
	"github.com/tutortrack/tutortrack/internal/domain/shared"
	"github.com/tutortrack/tutortrack/internal/engine/command"
)

func parseAdd(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixName, PrefixPhone, PrefixEmail, PrefixAddress, PrefixTag)
	if strings.TrimSpace(mm.Preamble()) != "" {
		return nil, invalidFormat(command.AddUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixes(PrefixName, PrefixPhone, PrefixEmail, PrefixAddress); err != nil {
		return nil, rewrap(err, command.AddUsage)
	}

	rawName, err := requireValue(mm, PrefixName, command.AddUsage)
	if err != nil {
		return nil, err
	}
	rawPhone, err := requireValue(mm, PrefixPhone, command.AddUsage)
	if err != nil {
		return nil, err
	}
	rawEmail, err := requireValue(mm, PrefixEmail, command.AddUsage)
	if err != nil {
		return nil, err
	}
	rawAddress, err := requireValue(mm, PrefixAddress, command.AddUsage)
	if err != nil {
		return nil, err
	}

	name, err := shared.NewName(rawName)
	if err != nil {
		return nil, rewrap(err, command.AddUsage)
	}
	phone, err := shared.NewPhone(rawPhone)
	if err != nil {
		return nil, rewrap(err, command.AddUsage)
	}
	email, err := shared.NewEmail(rawEmail)
	if err != nil {
		return nil, rewrap(err, command.AddUsage)
	}
	address, err := shared.NewAddress(rawAddress)
	if err != nil {
		return nil, rewrap(err, command.AddUsage)
	}
	tags, err := parseTags(mm.AllValues(PrefixTag))
	if err != nil {
		return nil, rewrap(err, command.AddUsage)
	}

	return command.Add{Person: person.New(name, phone, email, address, tags)}, nil
}

func parseDelete(args string) (command.Command, error) {
	mm := Tokenize(args)
	index, err := ParseIndex(mm.Preamble())
	if err != nil {
		return nil, rewrap(err, command.DeleteUsage)
	}
	return command.Delete{Index: index}, nil
}

func parseFind(args string) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalidFormat(command.FindUsage)
	}
	return command.Find{Keywords: keywords}, nil
}
