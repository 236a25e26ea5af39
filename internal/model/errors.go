package model

// IndexOutOfRange - Custom error to inform that an index is outside the valid range of a container
type IndexOutOfRange struct {
	msg string
}

// Error - Used to notify that an index is out of range
func (E IndexOutOfRange) Error() string {
	if E.msg == "" {
		return "index out of range"
	}
	return E.msg
}

// EmptyContainer - Custom error to inform that an operation needs at least one element
type EmptyContainer struct {
	msg string
}

// Error - Used to notify that the container is empty
func (E EmptyContainer) Error() string {
	if E.msg == "" {
		return "container is empty"
	}
	return E.msg
}

// WrongElementLength - Custom error to inform that given data does not match the element size
type WrongElementLength struct {
	msg string
}

// Error - Used to notify that data has the wrong length
func (E WrongElementLength) Error() string {
	if E.msg == "" {
		return "wrong element length"
	}
	return E.msg
}

// ContainerDeleted - Custom error to inform that the container has been deleted
type ContainerDeleted struct {
	msg string
}

// Error - Used to notify that the container has been deleted
func (E ContainerDeleted) Error() string {
	if E.msg == "" {
		return "container has been deleted"
	}
	return E.msg
}

// StaleReference - Custom error to inform that a peek reference outlived the layout it was taken from
type StaleReference struct {
	msg string
}

// Error - Used to notify that a reference is stale
func (E StaleReference) Error() string {
	if E.msg == "" {
		return "stale reference"
	}
	return E.msg
}

// InvalidCapacity - Custom error to inform that a requested capacity can't hold the current elements
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that a capacity is invalid
func (E InvalidCapacity) Error() string {
	if E.msg == "" {
		return "invalid capacity"
	}
	return E.msg
}

// CapacityExhausted - Custom error to inform that a bounded container is full
type CapacityExhausted struct {
	msg string
}

// Error - Used to notify that a bounded container is full
func (E CapacityExhausted) Error() string {
	if E.msg == "" {
		return "capacity exhausted"
	}
	return E.msg
}

// UnknownKind - Custom error to inform that a container kind is not one of the known backing stores
type UnknownKind struct {
	msg string
}

// Error - Used to notify that a container kind is unknown
func (E UnknownKind) Error() string {
	if E.msg == "" {
		return "unknown container kind"
	}
	return E.msg
}

// ElementNotFound - Custom error to inform that no element matches the one looked for
type ElementNotFound struct {
	msg string
}

// Error - Used to notify that the element was not found
func (E ElementNotFound) Error() string {
	if E.msg == "" {
		return "element not found"
	}
	return E.msg
}
