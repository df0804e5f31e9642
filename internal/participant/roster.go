package participant

import "fmt"

// Roster is the ordered list of students answering in an activity.
// The human learner conventionally sits first so their turn comes up before
// any scripted participant generates.
type Roster struct {
	members []*Participant
}

// NewRoster builds a roster from the given participants in answer order.
func NewRoster(members ...*Participant) (*Roster, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("roster needs at least one participant")
	}
	seen := map[string]bool{}
	for _, m := range members {
		if seen[m.Name] {
			return nil, fmt.Errorf("duplicate participant name %q", m.Name)
		}
		seen[m.Name] = true
	}
	return &Roster{members: members}, nil
}

// Len returns the number of participants.
func (r *Roster) Len() int {
	return len(r.members)
}

// At returns the participant at position i.
func (r *Roster) At(i int) *Participant {
	return r.members[i]
}

// Names returns all participant names in order.
func (r *Roster) Names() []string {
	out := make([]string, len(r.members))
	for i, m := range r.members {
		out[i] = m.Name
	}
	return out
}

// ByName returns the participant with the given name, or nil.
func (r *Roster) ByName(name string) *Participant {
	for _, m := range r.members {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Human returns the first human participant, or nil if none.
func (r *Roster) Human() *Participant {
	for _, m := range r.members {
		if m.Kind == KindHuman {
			return m
		}
	}
	return nil
}

// OthersFor lists every name except the given one, preserving order.
func (r *Roster) OthersFor(name string) []string {
	var out []string
	for _, m := range r.members {
		if m.Name != name {
			out = append(out, m.Name)
		}
	}
	return out
}

// Next returns the participant after position i, wrapping around.
func (r *Roster) Next(i int) *Participant {
	return r.members[(i+1)%len(r.members)]
}
