// Copyright (c) 2025 The netradix Authors
// SPDX-License-Identifier: MIT

// Command patricia-demo builds a V4 and a V6 trie from randomly generated
// real-world-shaped prefixes and exercises the basic operations. It is a
// single-threaded walkthrough, not a benchmark or a server: the package
// itself does not support concurrent access, so this demo does not either.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/netradix/patricia"
)

func main() {
	log.SetFlags(log.Lmicroseconds)
	prng := rand.New(rand.NewPCG(42, 42))

	t4, err := patricia.New[string](patricia.Options[string]{Family: patricia.V4})
	if err != nil {
		log.Fatal(err)
	}

	ts := time.Now()
	for i, pfx := range randomRealWorldPrefixes4(prng, 10_000) {
		if err := t4.Insert(pfx, pfx.String()); err != nil {
			log.Fatalf("insert %d (%s): %v", i, pfx, err)
		}
	}
	log.Printf("inserted %d V4 prefixes in %v", t4.Len(), time.Since(ts))

	probe4 := randomIP4(prng)
	if matched, val, err := t4.GetKey(probe4.String()); err == nil {
		fmt.Printf("longest match for %s: %s -> %s\n", probe4, matched, val)
	} else {
		fmt.Printf("no match for %s\n", probe4)
	}

	t6, err := patricia.New[string](patricia.Options[string]{Family: patricia.V6})
	if err != nil {
		log.Fatal(err)
	}
	for i, pfx := range randomRealWorldPrefixes6(prng, 2_000) {
		if err := t6.Insert(pfx, pfx.String()); err != nil {
			log.Fatalf("insert %d (%s): %v", i, pfx, err)
		}
	}
	log.Printf("inserted %d V6 prefixes", t6.Len())

	t4.Freeze()
	log.Printf("froze V4 trie, frozen=%v, len still %d", t4.Frozen(), t4.Len())
	if err := t4.Thaw(); err != nil {
		log.Fatal(err)
	}

	small, err := patricia.New[int](patricia.Options[int]{Family: patricia.V4})
	if err != nil {
		log.Fatal(err)
	}
	for pfx, v := range map[string]int{
		"10.0.0.0/8":     1,
		"10.0.0.0/24":    2,
		"10.0.1.0/24":    3,
		"192.168.0.0/16": 4,
	} {
		if err := small.Insert(pfx, v); err != nil {
			log.Fatal(err)
		}
	}
	fmt.Print(small.String())
}
