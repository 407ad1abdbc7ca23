package poll

import "math"

// Option is one answer a voter can pick.
type Option struct {
	ID    string
	Label string
}

// Poll is a team question. Votes maps a player id to the option ids that player picked.
type Poll struct {
	ID          string
	TeamID      string
	Question    string
	Options     []Option
	Votes       map[string][]string
	MultiSelect bool
}

type OptionResult struct {
	Option  Option
	Votes   int
	Percent int
}

// Result is a derived tally; it is never stored.
type Result struct {
	PollID  string
	Options []OptionResult
	Voters  int
	Leading []string
}

// Tally counts votes per option in option order. Votes for unknown options are ignored and
// single-select polls only count each voter's first known pick.
func Tally(p Poll) Result {
	index := make(map[string]int, len(p.Options))
	out := Result{PollID: p.ID, Options: make([]OptionResult, len(p.Options))}
	for i, opt := range p.Options {
		index[opt.ID] = i
		out.Options[i] = OptionResult{Option: opt}
	}

	for _, picks := range p.Votes {
		counted := false
		seen := make(map[int]struct{}, len(picks))
		for _, optionID := range picks {
			i, ok := index[optionID]
			if !ok {
				continue
			}
			if _, dup := seen[i]; dup {
				continue
			}
			seen[i] = struct{}{}
			out.Options[i].Votes++
			counted = true
			if !p.MultiSelect {
				break
			}
		}
		if counted {
			out.Voters++
		}
	}

	best := 0
	for i := range out.Options {
		if out.Voters > 0 {
			out.Options[i].Percent = int(math.Round(float64(out.Options[i].Votes) * 100 / float64(out.Voters)))
		}
		if out.Options[i].Votes > best {
			best = out.Options[i].Votes
		}
	}
	if best > 0 {
		for _, r := range out.Options {
			if r.Votes == best {
				out.Leading = append(out.Leading, r.Option.ID)
			}
		}
	}
	return out
}
