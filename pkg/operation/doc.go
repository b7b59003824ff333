/*
Package operation runs patch plans against the filesystem.

	+-------------+
	|   Config    |
	| (targets)   |
	+------+------+
	       |
	+------+------+
	|   Runner    |
	| (sequence)  |
	+------+------+
	       |
	+------+------+
	|   Patcher   |
	| (per file)  |
	+-------------+

🎯 Purpose:
- Patches every target of a plan, one at a time
- Decides what a failure means for the other targets
- Previews changes as line diffs without writing

🔄 Failure modes:
1. Independent (default): every target is attempted; failures are reported per file
2. All-or-nothing: targets are backed up first; the first failure restores every
   target already patched and skips the rest

Backups only exist for the duration of an all-or-nothing run. Each one is a fresh
hidden file next to its target, so files already on disk are never touched. A backup
whose restore failed is left in place and reported.
*/
package operation
