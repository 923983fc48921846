package strto

// readSign consumes a single leading '+' or '-' and reports whether it was '-'.
func readSign[C Char](s []C, lit *Literals[C]) (negative bool, rest []C) {
	if len(s) == 0 {
		return false, s
	}
	switch s[0] {
	case lit.Plus:
		return false, s[1:]
	case lit.Minus:
		return true, s[1:]
	}
	return false, s
}
