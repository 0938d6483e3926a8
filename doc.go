/* Package main: brackish -- a bracket nested stack language

Brackish programs are lines of whitespace separated words. Square brackets
open and close execution contexts, and contexts may nest to any depth; the only
special characters are the brackets themselves, so "x[y]z" is three words and
one context. Everything else is a word.

Words evaluate in postfix order against a single value stack. A value is an
integer, a list of values, or a reference: a word starting with a single quote,
like 'x, names a variable rather than reading it.

The built-in words are:

	+ - * / %   integer arithmetic on the top two numbers
	@           "item... count @" collects count items into a list
	$           "'name $" reads a variable, "'name value $" binds one
	fn          "fn NAME [BODY]" defines NAME as a macro

Any other word is a macro call, an integer literal, or a reference literal, in
that order of preference; anything else is undefined. Calling a macro evaluates
its body in place, so macros share the caller's stack and may recurse, up to a
call depth limit.

Contexts span lines: a line that leaves a context open is held until a later
line closes it, and only then is the whole top level fragment evaluated. An
unbalanced close poisons the interpreter: every later token is ignored, and
reported, until a reset.

An error while evaluating abandons the rest of the fragment but keeps the
stack as it stood; operators check their operands before consuming any of
them, except that dividing by zero consumes both operands and produces nothing.

The command reads its prelude files, then standard input, printing the value
stack after every evaluated fragment. When standard input is a terminal, it
offers a line editor with history. From any source, a line holding only one
of these commands is acted on by the command rather than evaluated:

	:reset  recover from an unbalanced close, discarding open contexts
	:dump   describe interpreter state
	:quit   stop reading input

Diagnostics are structured log records written to standard error, as text on a
terminal and JSON otherwise; see the -log-level and -log-format flags, or the
YAML file given by -config.

*/
package main
