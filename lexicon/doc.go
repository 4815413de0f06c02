// Package lexicon supplies the English number-name vocabulary that
// name-length counting depends on.
//
// 🚀 What is lexicon?
//
//	Two precomputed tables and their letter counts:
//	  • Numeral text for every period value in [0, 1000) —
//	    "one" … "nine hundred ninety-nine".
//	  • Conway–Wechsler zillion prefixes for every base-1000 digit of a
//	    zillion index — "m" (million), "dec" (decillion),
//	    "trescent" (trescentillion), …
//
// ✨ Naming scheme
//
//	Scale names follow the Conway–Wechsler system: a zillion index is
//	written in base 1000 and each digit contributes prefix + "illi",
//	with a final "on". Index 0 is the irregular "thousand". The zero
//	digit inside a larger index contributes "nilli", e.g. index
//	1000000 → "millinillinillion".
//
//	Combined prefixes for digits 10..999 are assembled from unit, tens
//	and hundreds components with the Conway–Wechsler assimilation rules
//	(tre(s), se(s/x), septe(m/n), nove(m/n)), then lose their final
//	vowel before "illi": 21 → "unvigint", 103 → "trescent".
//
// ⚙️ Usage:
//
//	lexicon.Name(373)          // "three hundred seventy-three"
//	lexicon.NameLetters(373)   // 24
//	lexicon.Prefix(10)         // "dec"
//	lexicon.PrefixLetters(2)   // 5 — len("b" + "illi")
//
// Tables are built once at package initialization; lookups are O(1).
package lexicon
