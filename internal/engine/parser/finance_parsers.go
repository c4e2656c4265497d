package parser

import (
	"strings"

	"github.com/tutortrack/tutortrack/internal/domain/finance"
	"github.com/tutortrack/tutortrack/internal/domain/shared"
	"github.com/tutortrack/tutortrack/internal/engine/command"
)

func parsePay(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixAmount, PrefixNote)
	if err := mm.VerifyNoDuplicatePrefixes(PrefixAmount, PrefixNote); err != nil {
		return nil, rewrap(err, command.PayUsage)
	}

	index, err := ParseIndex(mm.Preamble())
	if err != nil {
		return nil, rewrap(err, command.PayUsage)
	}
	rawAmount, err := requireValue(mm, PrefixAmount, command.PayUsage)
	if err != nil {
		return nil, err
	}
	amount, err := shared.NewAmount(rawAmount)
	if err != nil {
		return nil, rewrap(err, command.PayUsage)
	}
	note, _ := mm.Value(PrefixNote)

	return command.Pay{Index: index, Amount: amount, Note: note}, nil
}

func parseAddFinance(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixAmount)
	if err := mm.VerifyNoDuplicatePrefixes(PrefixAmount); err != nil {
		return nil, rewrap(err, command.AddFinanceUsage)
	}

	index, err := ParseIndex(mm.Preamble())
	if err != nil {
		return nil, rewrap(err, command.AddFinanceUsage)
	}
	rawAmount, err := requireValue(mm, PrefixAmount, command.AddFinanceUsage)
	if err != nil {
		return nil, err
	}
	amount, err := shared.NewAmount(rawAmount)
	if err != nil {
		return nil, rewrap(err, command.AddFinanceUsage)
	}

	return command.AddFinance{Index: index, Amount: amount}, nil
}

func parseAddFee(args string) (command.Command, error) {
	mm := Tokenize(args, PrefixStudent, PrefixTime, PrefixAmount)
	if strings.TrimSpace(mm.Preamble()) != "" {
		return nil, invalidFormat(command.AddFeeUsage)
	}
	if err := mm.VerifyNoDuplicatePrefixes(PrefixStudent, PrefixTime, PrefixAmount); err != nil {
		return nil, rewrap(err, command.AddFeeUsage)
	}

	rawName, err := requireValue(mm, PrefixStudent, command.AddFeeUsage)
	if err != nil {
		return nil, err
	}
	rawCadence, err := requireValue(mm, PrefixTime, command.AddFeeUsage)
	if err != nil {
		return nil, err
	}
	rawRate, err := requireValue(mm, PrefixAmount, command.AddFeeUsage)
	if err != nil {
		return nil, err
	}

	name, err := shared.NewName(rawName)
	if err != nil {
		return nil, rewrap(err, command.AddFeeUsage)
	}
	cadence, err := finance.NewPlanCadence(rawCadence)
	if err != nil {
		return nil, rewrap(err, command.AddFeeUsage)
	}
	rate, err := shared.NewAmount(rawRate)
	if err != nil {
		return nil, rewrap(err, command.AddFeeUsage)
	}
	plan, err := finance.NewTuitionPlan(cadence, rate)
	if err != nil {
		return nil, rewrap(err, command.AddFeeUsage)
	}

	return command.AddFee{StudentName: name, Plan: plan}, nil
}
