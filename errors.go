package uglycontainers

import "github.com/Zamuhrishka/uglycontainers/internal/model"

// IndexOutOfRange - Returned when an index doesn't address an element (or insert position)
type IndexOutOfRange = model.IndexOutOfRange

// EmptyContainer - Returned by pops and indexed access on a container without elements
type EmptyContainer = model.EmptyContainer

// WrongElementLength - Returned when data is not exactly ElementSize() bytes long
type WrongElementLength = model.WrongElementLength

// ContainerDeleted - Returned by any operation on a container after Delete
type ContainerDeleted = model.ContainerDeleted

// StaleReference - Returned by Ref.Bytes when the container layout changed since Peek
type StaleReference = model.StaleReference

// InvalidCapacity - Returned by Resize when the requested capacity can't hold the current elements
type InvalidCapacity = model.InvalidCapacity

// CapacityExhausted - Returned by bounded containers built on top of Container when they are full
type CapacityExhausted = model.CapacityExhausted

// UnknownKind - Returned by New when kind is neither LinkedListBased nor VectorBased
type UnknownKind = model.UnknownKind

// ElementNotFound - Returned by searching containers built on top of Container when the element is absent
type ElementNotFound = model.ElementNotFound
