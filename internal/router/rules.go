package router

import (
	"docnav/internal/models"
)

// rules is the routing table. Order matters: it is the tie-break when a
// query matches keywords from more than one rule, so the earlier rule wins
// even if a later one would match more keywords. Do not reorder.
var rules = []models.RoutingRule{
	{
		Category: models.CategoryMIGConfig,
		Keywords: []string{
			"mig", "multi-instance", "gpu partitioning", "mig mode",
			"gpu instance", "compute instance", "a100", "h100",
		},
		Tags: []string{"mig", "configuration", "multi-instance"},
	},
	{
		Category: models.CategoryNVLink,
		Keywords: []string{
			"nvlink", "nv-link", "gpu interconnect", "peer-to-peer",
			"p2p", "gpu communication",
		},
		Tags: []string{"nvlink", "interconnect", "p2p"},
	},
	{
		Category: models.CategoryTensorRT,
		Keywords: []string{
			"tensorrt", "trt", "inference optimization", "fp16", "int8",
			"inference engine", "onnx",
		},
		Tags: []string{"tensorrt", "inference", "optimization"},
	},
	{
		Category: models.CategoryNeMo,
		Keywords: []string{
			"nemo", "llm", "language model", "asr", "speech recognition",
			"conversational ai",
		},
		Tags: []string{"nemo", "llm", "ai"},
	},
	{
		Category: models.CategoryTriton,
		Keywords: []string{
			"triton", "inference server", "model serving", "deployment",
			"triton server",
		},
		Tags: []string{"triton", "inference-server", "deployment"},
	},
	{
		Category: models.CategoryCUDAProfiling,
		Keywords: []string{
			"nsight", "profiling", "profiler", "performance analysis",
			"kernel slow", "optimization", "bottleneck",
		},
		Tags: []string{"cuda", "profiling", "performance"},
	},
	{
		Category: models.CategoryCUDAGeneral,
		Keywords: []string{
			"cuda", "kernel", "thread", "block", "grid", "device",
			"host", "memory", "shared memory", "global memory",
		},
		Tags: []string{"cuda", "programming", "gpu"},
	},
}

// genericTags is attached when no rule matches.
var genericTags = []string{"General"}

// Rules returns the routing table in evaluation order.
func Rules() []models.RoutingRule {
	return rules
}
