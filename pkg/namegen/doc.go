/*
Package namegen provides weighted random sampling of names for games and
other programs that want plausible character names instead of uniform picks.

The core is WeightedSampler, a Walker alias table that draws an index with
probability proportional to its weight in O(1) time after O(n) setup.
NameList pairs a sampler with the names themselves, FullNameList composes a
given-name list and a family-name list into full-name pairs, and the
pkg/presets package ships ready-made locale tables built on top of both.

All sampling takes a caller-owned *rand.Rand, so a seeded generator replays
an identical sequence of names. Nothing in this package is safe for
concurrent use without external synchronization.
*/
package namegen
