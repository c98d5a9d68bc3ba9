package schedgen

import "fmt"

// promptTemplate is the fixed transformation instruction. It directs the
// model to preserve dependency declarations and comments and to emit only
// the rewritten source, so the response carries at most one code region.
const promptTemplate = `Modify the following scheduler to match these requirements:

%s
Keep all the original inclusions and dependencies.
Keep all the original comments in the code.
Output the source code directly, never ever print any additional comment around the source code.

This is the original scheduler's source code:
%s`

// ComposePrompt embeds the user-supplied requirement and the current source
// text into the transformation instruction template. Purely textual and
// deterministic given identical inputs.
func ComposePrompt(requirement, originalSource string) string {
	return fmt.Sprintf(promptTemplate, requirement, originalSource)
}
