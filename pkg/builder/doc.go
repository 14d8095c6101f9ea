/*
Package builder implements the cursor-driven construction engine for card
trees.

A Card owns one document tree and one cursor, the node currently receiving
new children. Add validates the candidate against the cursor's containers,
appends it, and applies the recursion policy: composite nodes attract the
cursor, so sequential Add calls read as a depth-first authoring DSL without
an explicit stack. UpOneLevel, BackToTop and AddBatch's Ascend/Reset
sentinels cover the flat authoring style; SaveLevel/LoadLevel checkpoints
cover data-driven construction where a position must be restored after an
unbounded amount of intervening nesting.

The two tree walks live here as well: Document/JSON (read-only, reentrant
serialization) and Translate (one collaborator call per pass, all-or-nothing
write-back).
*/
package builder
