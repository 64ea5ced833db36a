/*
Package presets ships ready-made weighted name lists for a few real-world
locales, built from census-derived frequency tables compiled into the
library.

Every factory call constructs a fresh, independent NameList or FullNameList
from the literal tables, so callers may mutate or extend what they get back
without affecting anyone else. The tables themselves are process-wide
constant data; nothing here holds shared mutable state.

The weights are relative frequencies as published by the sources linked from
each table and may not perfectly represent the cultures in those nations.
*/
package presets
