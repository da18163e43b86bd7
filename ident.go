package uitree

// idSequence hands out node identities for a single tree build.
// Each Tree owns one; Build resets it so identities restart at zero.
type idSequence struct {
	next int
}

func (s *idSequence) reset() {
	s.next = 0
}

func (s *idSequence) issue() int {
	id := s.next
	s.next++
	return id
}

// issued reports how many identities have been handed out since the last reset.
func (s *idSequence) issued() int {
	return s.next
}
