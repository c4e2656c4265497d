package parser

import (
	"strings"

	"github.com/tutortrack/tutortrack/internal/engine/command"
)

// Parse turns one line of command text into an executable Command. The
// command word is resolved through this single switch, so the set of verbs is
// closed and checked at compile time.
func Parse(text string) (command.Command, error) {
	word, args := splitCommandWord(text)
	if word == "" {
		return nil, &ParseError{Message: MessageInvalidFormat, Usage: command.HelpUsage}
	}

	switch word {
	case command.AddWord:
		return parseAdd(args)
	case command.DeleteWord:
		return parseDelete(args)
	case command.ListWord:
		return parseBare(args, command.List{}, command.ListUsage)
	case command.FindWord:
		return parseFind(args)
	case command.AddLessonWord:
		return parseAddLesson(args)
	case command.MarkWord:
		return parseMark(args)
	case command.AddFeeWord:
		return parseAddFee(args)
	case command.AddFinanceWord:
		return parseAddFinance(args)
	case command.PayWord:
		return parsePay(args)
	case command.PaymentHistoryWord:
		return parseBare(args, command.PaymentHistory{}, command.PaymentHistoryUsage)
	case command.ScheduleWord:
		return parseBare(args, command.Schedule{}, command.ScheduleUsage)
	case command.OutstandingWord:
		return parseBare(args, command.Outstanding{}, command.OutstandingUsage)
	case command.HelpWord:
		return parseBare(args, command.Help{}, command.HelpUsage)
	case command.ExitWord:
		return parseBare(args, command.Exit{}, command.ExitUsage)
	default:
		return nil, &ParseError{Message: MessageUnknownCommand}
	}
}

// splitCommandWord separates the leading command word from its argument
// string, preserving the leading space in front of the first argument so
// prefix matching stays anchored.
func splitCommandWord(text string) (word, args string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ""
	}
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		return strings.ToLower(trimmed[:i]), " " + strings.TrimLeft(trimmed[i:], " \t")
	}
	return strings.ToLower(trimmed), ""
}

// parseBare handles argument-less commands, rejecting stray arguments.
func parseBare(args string, cmd command.Command, usage string) (command.Command, error) {
	if strings.TrimSpace(args) != "" {
		return nil, invalidFormat(usage)
	}
	return cmd, nil
}
