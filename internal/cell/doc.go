// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

/*
Package cell implements the sequence generator behind the "cell filling"
screen.

A Generator owns an ordered log of entries and two streak counters. Every
call to Trigger flips a coin and appends a dead or live cell:

  - three live cells in a row append an extra Life marker after the third
    one and reset the live streak;
  - three dead cells in a row remove the most recent Life marker, if any,
    and reset the dead streak.

Drawing one kind always zeroes the other streak, so at most one counter is
non-zero and neither is ever observed at 3.

Entries are values: they are appended or removed whole and never modified.
A Generator is not safe for concurrent use; callers serialize Trigger the
way a UI event loop would.
*/
package cell
