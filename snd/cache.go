// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/gopxl/beep/v2"
)

// material is one decoded, buffered track. Every route streams a fresh
// streamer off the shared buffer.
type material struct {
	name string
	buf  *beep.Buffer
}

type cache []*material

func (c *cache) Get(i int) *material {
	if i < 0 || i >= len(*c) {
		return nil
	}
	return (*c)[i]
}

func (c *cache) Has(n string) (int, bool) {
	for i, s := range *c {
		if s.name == n {
			return i, true
		}
	}
	return -1, false
}

func (c *cache) Add(s *material) int {
	r := len(*c)
	*c = append(*c, s)
	return r
}
