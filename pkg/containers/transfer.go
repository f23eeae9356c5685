package containers

// Transfer moves cards from src to dst. With nil identifiers every card
// in src moves; otherwise only the identified cards do. On error both
// containers are left unchanged.
func Transfer(src, dst *Container, identifiers []int) error {
	if identifiers == nil {
		identifiers = src.Identifiers()
	}

	moved, err := src.RemoveCards(identifiers)
	if err != nil {
		return err
	}

	dst.AddCards(moved)
	return nil
}
