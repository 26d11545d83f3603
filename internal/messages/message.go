// Package messages holds the translation keys of non-error text rendered by botopt
package messages

const (
	prefixKey = "botopt.msg"

	MsgRequiredKey   = prefixKey + ".required"
	MsgOptionalKey   = prefixKey + ".optional"
	MsgDefaultsToKey = prefixKey + ".defaults_to"
	MsgUsageKey      = prefixKey + ".usage"
	MsgOrKey         = prefixKey + ".or"
)
