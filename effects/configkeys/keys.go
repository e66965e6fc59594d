package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigInstancePrefix = ConfigPrefix + delimiter + "instance"
	ConfigInstanceBoxes  = ConfigInstancePrefix + delimiter + "boxes"
	ConfigInstanceBalls  = ConfigInstancePrefix + delimiter + "balls"

	ConfigTracePrefix  = ConfigPrefix + delimiter + "trace"
	ConfigTraceEnabled = ConfigTracePrefix + delimiter + "enabled"

	ConfigEffectPrefix = ConfigPrefix + delimiter + "effect"

	ConfigEffectBindingPrefix = ConfigEffectPrefix + delimiter + "binding"

	ConfigEffectBindingHandlerPrefix     = ConfigEffectBindingPrefix + delimiter + "handler"
	ConfigEffectBindingHandlerBufferSize = ConfigEffectBindingHandlerPrefix + delimiter + "buffer_size"
	ConfigEffectBindingHandlerNumWorkers = ConfigEffectBindingHandlerPrefix + delimiter + "num_workers"

	ConfigEffectLogPrefix = ConfigEffectPrefix + delimiter + "log"

	ConfigEffectLogHandlerPrefix     = ConfigEffectLogPrefix + delimiter + "handler"
	ConfigEffectLogHandlerBufferSize = ConfigEffectLogHandlerPrefix + delimiter + "buffer_size"
)
