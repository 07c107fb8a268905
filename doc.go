// Package evogrid is your in-memory toolkit for the time bookkeeping of
// LIBOR market-model Monte-Carlo: evolution grids, numeraire measures, and
// the sequence utilities that assemble them.
//
// 🚀 What is evogrid?
//
//	A small, immutable-value library that brings together:
//		• Evolution descriptions: rate-time + evolution-time grids, validated eagerly
//		• Derived step structures: tenors, effective stop times, first-alive indices
//		• Measures: terminal, money-market and money-market-plus numeraire assignments
//		• Compatibility: vetting of externally supplied numeraire assignments
//		• Time grids: merging, membership and span extraction over sorted sequences
//
// ✨ Why choose evogrid?
//
//   - Eager validation – every invariant checked once at construction, sentinel errors only
//   - Read-only sharing – immutable values, safe across goroutines without locks
//   - Engine-ready – per-step tables precomputed the way drift loops consume them
//   - Pure computation – no dates, no calendars, no pricing; plain []float64 in, structures out
//
// Under the hood, everything is organized under two subpackages:
//
//	evolution/ — Description, measure builders, compatibility checking
//	timegrid/  — strictly increasing sequence assembly and vetting
//
// Quick ASCII example:
//
//	rate times:       T0──────T1──────T2──────T3
//	forward rates:     └─ f0 ──┘└─ f1 ─┘└─ f2 ─┘
//	evolution steps:  e0      e1      e2
//
//	three forward rates evolved jointly at three step times; each step fixes
//	the rate whose span it closes.
//
// Dive into README.md for full examples and the measure-selection guide.
//
//	go get github.com/katalvlaran/evogrid
package evogrid
