package crt

// KeyNotFound - Custom error to inform that no slot holds the key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that the key was not found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// SetFull - Custom error to inform that the hash set has reached its capacity and can't take more keys
type SetFull struct {
	msg string
}

// Error - Used to notify that the hash set is full
func (E SetFull) Error() string {
	if E.msg == "" {
		return "hash set full"
	}
	return E.msg
}

// ProbingExhausted - Custom error to inform that the probe sequence ended without finding a usable slot
type ProbingExhausted struct {
	msg string
}

// Error - Used to notify that probing was exhausted
func (P ProbingExhausted) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}
