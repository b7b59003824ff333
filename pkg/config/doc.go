/*
Package config loads and validates patch plans for patchrc.

	            +-------------+
	            |   Config    |
	            | (targets +  |
	            |  rules)     |
	            +------+------+
	                   |
	   +--------+------+------+--------+
	   |        |             |        |
	+--+--+  +--+--+      +---+--+  +--+---+
	| YAML|  | JSON|      |  HCL |  | TOML |
	+-----+  +-----+      +------+  +------+

🎯 Purpose:
- Reads a plan listing the files to patch and the literal replacements for each
- Rejects malformed plans before any file is touched
- Builds the ordered rule batch for a given target

🔄 Flow:
1. LoadConfig picks a Parser by file extension
2. The parser decodes into Config, refusing unknown fields
3. Validate checks targets, rule patterns and file filters
4. BatchFor returns shared rules (filtered by their files glob) then target rules

🔍 Example:

	cfg, err := config.LoadConfig(ctx, ".patchrc.yaml")
	if err != nil {
		var rerr *text.InvalidRuleError
		if errors.As(err, &rerr) {
			fmt.Printf("rule %d has an empty pattern\n", rerr.Index)
		}
		return err
	}

	for _, t := range cfg.Targets {
		rules := cfg.BatchFor(t)
		// ...
	}
*/
package config
