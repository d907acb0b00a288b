// Package class contains the error classification system used by all tabula
// packages. Every error produced within the module carries a Class value that
// tells where in the system the error originated and what it relates to.
package class

import "fmt"

const (
	majorBitSize = 8
	minorBitSize = 8
	indexBitSize = 32 - majorBitSize - minorBitSize
)

// Class is the tabula error classification value. It is composed of the major
// and minor subclassifications packed into a single uint32, where the major
// takes the highest 8 bits and the minor the following 8. The remaining index
// bits keep classes within a single (major, minor) pair unique.
type Class uint32

// Major is the global scope division of the classification, i.e. 'Query',
// 'Config', 'Repository'.
type Major uint8

// Minor divides a major into subclasses, i.e. query joins, query sorts.
type Minor uint8

// Major returns the class' major classification.
func (c Class) Major() Major {
	return Major(c >> (minorBitSize + indexBitSize))
}

// Minor returns the class' minor classification.
func (c Class) Minor() Minor {
	return Minor(c >> indexBitSize)
}

// IsMajor checks if the class is composed of the provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	return fmt.Sprintf("%02x%02x%04x", uint8(c.Major()), uint8(c.Minor()), uint32(c)&(1<<indexBitSize-1))
}

func newClass(mjr Major, mnr Minor, index uint16) Class {
	return Class(uint32(mjr)<<(minorBitSize+indexBitSize) | uint32(mnr)<<indexBitSize | uint32(index))
}
