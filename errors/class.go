package errors

import (
	"errors"
	"fmt"
	"sync"
)

const (
	majorBitSize = 8
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxMajorValue = 1<<majorBitSize - 1
	maxMinorValue = 1<<minorBitSize - 1
	maxIndexValue = 1<<indexBitSize - 1
)

// Class is the error classification model.
// It is composed of the major, minor and index subclassifications.
// Each subclassification is a different length number, where
// major is composed of 8, minor 10 and index of 14 bits.
// Major should be a global scope division like 'Config', 'Entity', 'Data' etc.
// Minor divides the major into subclasses, and the index is the most precise classification.
type Class uint32

// Major gets the major classification of the class.
func (c Class) Major() Major {
	return Major(uint32(c) >> (minorBitSize + indexBitSize))
}

// Minor gets the minor classification of the class.
func (c Class) Minor() Minor {
	return Minor(uint32(c) >> indexBitSize & maxMinorValue)
}

// Index gets the index classification of the class.
func (c Class) Index() Index {
	return Index(uint32(c) & maxIndexValue)
}

// String implements fmt.Stringer interface.
func (c Class) String() string {
	return fmt.Sprintf("%d.%d.%d", c.Major(), c.Minor(), c.Index())
}

// Major is the top level error classification.
type Major uint8

// Valid checks if the major was registered.
func (m Major) Valid() bool {
	return m != 0 && uint16(m) < ctr.nextMajor()
}

// Minor is the mid level error classification, unique within given major.
type Minor uint16

// Index is the most precise error classification, unique within given major and minor.
type Index uint16

// NewMajor registers new major classification.
func NewMajor() (Major, error) {
	return ctr.newMajor()
}

// MustNewMajor registers new major classification. Panics on error.
func MustNewMajor() Major {
	m, err := NewMajor()
	if err != nil {
		panic(err)
	}
	return m
}

// NewMinor registers new minor classification within the major 'm'.
func NewMinor(m Major) (Minor, error) {
	return ctr.newMinor(m)
}

// MustNewMinor registers new minor classification within the major 'm'. Panics on error.
func MustNewMinor(m Major) Minor {
	mn, err := NewMinor(m)
	if err != nil {
		panic(err)
	}
	return mn
}

// NewIndex registers new index classification within the major 'm' and minor 'mn'.
func NewIndex(m Major, mn Minor) (Index, error) {
	return ctr.newIndex(m, mn)
}

// MustNewIndex registers new index classification within the major 'm' and minor 'mn'.
// Panics on error.
func MustNewIndex(m Major, mn Minor) Index {
	i, err := NewIndex(m, mn)
	if err != nil {
		panic(err)
	}
	return i
}

// NewClass composes the class from the provided registered 'm' major, 'mn' minor and 'i' index.
// A zero minor or index is allowed and denotes a class classified only by its major or minor.
func NewClass(m Major, mn Minor, i Index) (Class, error) {
	if !m.Valid() {
		return 0, errors.New("provided invalid major")
	}
	if mn > maxMinorValue || !ctr.minorRegistered(m, mn) {
		return 0, errors.New("provided invalid minor")
	}
	if i > maxIndexValue || !ctr.indexRegistered(m, mn, i) {
		return 0, errors.New("provided invalid index")
	}
	return Class(uint32(m)<<(minorBitSize+indexBitSize) | uint32(mn)<<indexBitSize | uint32(i)), nil
}

// MustNewClass composes the class from the provided major, minor and index. Panics on error.
func MustNewClass(m Major, mn Minor, i Index) Class {
	c, err := NewClass(m, mn, i)
	if err != nil {
		panic(err)
	}
	return c
}

// MustNewMajorClass creates new class classified by a newly registered minor of the major 'm'.
func MustNewMajorClass(m Major) Class {
	return MustNewClass(m, MustNewMinor(m), 0)
}

// MustNewMinorClass creates new class classified by a newly registered index of the provided major and minor.
func MustNewMinorClass(m Major, mn Minor) Class {
	return MustNewClass(m, mn, MustNewIndex(m, mn))
}

var ctr = newContainer()

type container struct {
	lock    sync.Mutex
	majors  uint16
	minors  map[Major]Minor
	indexes map[uint32]Index
}

func newContainer() *container {
	return &container{
		majors:  1,
		minors:  map[Major]Minor{},
		indexes: map[uint32]Index{},
	}
}

func resetContainer() {
	fresh := newContainer()
	ctr.lock.Lock()
	defer ctr.lock.Unlock()
	ctr.majors = fresh.majors
	ctr.minors = fresh.minors
	ctr.indexes = fresh.indexes
}

func (c *container) nextMajor() uint16 {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.majors
}

func (c *container) newMajor() (Major, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.majors > maxMajorValue {
		return 0, errors.New("too many majors registered")
	}
	m := Major(c.majors)
	c.majors++
	return m, nil
}

func (c *container) newMinor(m Major) (Minor, error) {
	if !m.Valid() {
		return 0, errors.New("provided invalid major")
	}
	c.lock.Lock()
	defer c.lock.Unlock()

	next := c.minors[m] + 1
	if next > maxMinorValue {
		return 0, errors.New("too many minors registered for the major")
	}
	c.minors[m] = next
	return next, nil
}

func (c *container) newIndex(m Major, mn Minor) (Index, error) {
	if !m.Valid() {
		return 0, errors.New("provided invalid major")
	}
	c.lock.Lock()
	defer c.lock.Unlock()

	if mn == 0 || mn > c.minors[m] {
		return 0, errors.New("provided invalid minor")
	}
	key := uint32(m)<<minorBitSize | uint32(mn)
	next := c.indexes[key] + 1
	if next > maxIndexValue {
		return 0, errors.New("too many indexes registered for the minor")
	}
	c.indexes[key] = next
	return next, nil
}

func (c *container) minorRegistered(m Major, mn Minor) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return mn <= c.minors[m]
}

func (c *container) indexRegistered(m Major, mn Minor, i Index) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	if i == 0 {
		return true
	}
	if mn == 0 {
		return false
	}
	return i <= c.indexes[uint32(m)<<minorBitSize|uint32(mn)]
}
