package parser

// Reasons attached to Unrecognized commands.
const (
	ReasonNoInput         = "No input found"
	ReasonUnknownCommand  = "Invalid command, try 'help' for list of commands"
	ReasonMissingCategory = "No score type found, try 'score <1-12>' or 'score <name>'"
	ReasonBadCategory     = "Invalid score type"
	ReasonCategoryRange   = "Invalid score type, should be (1-12)"
	ReasonMissingDie      = "Couldn't find command args, try 'hold <1-5>'"
	ReasonBadDie          = "Unable to parse dice number (did you enter a number?)"
	ReasonDieRange        = "Invalid Dice Number, should be (1-5)"
	ReasonNoHelp          = "No help found for that"
)
