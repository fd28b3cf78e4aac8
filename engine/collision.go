package engine

// Collides reports whether the head is off the board or on the body
func Collides(s *GameState) bool {
	head := s.Snake.Head()
	if !head.In(s.Width, s.Height) {
		return true
	}
	return s.Snake.BodyContains(head)
}
