package testutil

// SampleLayout is the reference warehouse floor: 71 rolls, 13 of them
// reachable at threshold 3, 43 removed in total.
const SampleLayout = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`
