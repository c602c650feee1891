package knowledge

import (
	"fmt"
	"strings"

	"docnav/internal/models"
)

// templateFunc builds a Markdown answer body for one category. The query is
// available for restating; the Sources section is appended by the caller.
type templateFunc func(query string) string

var templatesByCategory = map[models.Category]templateFunc{
	models.CategoryMIGConfig:     migTemplate,
	models.CategoryNVLink:        nvlinkTemplate,
	models.CategoryTensorRT:      tensorrtTemplate,
	models.CategoryNeMo:          nemoTemplate,
	models.CategoryTriton:        tritonTemplate,
	models.CategoryCUDAProfiling: profilingTemplate,
	models.CategoryCUDAGeneral:   cudaTemplate,
}

// RenderTemplate builds the deterministic fallback answer for a category.
// Unknown categories fall through to the generic restatement, so the result
// is never empty.
func RenderTemplate(cat models.Category, query string) string {
	if fn, ok := templatesByCategory[cat]; ok {
		return fn(query)
	}
	return genericTemplate(query)
}

func migTemplate(string) string {
	return strings.TrimSpace(`
Based on NVIDIA's MIG documentation, configuring Multi-Instance GPU works as follows:

1. Enable MIG mode on the target GPU: ` + "`sudo nvidia-smi -i 0 -mig 1`" + `
2. Create GPU instances with the desired profiles: ` + "`sudo nvidia-smi mig -cgi 19,19 -C`" + `
3. Verify the instances are visible: ` + "`nvidia-smi -L`" + `
4. If running under Kubernetes, check the device plugin configuration for the MIG strategy.
5. Restart the kubelet after changing MIG geometry so the new devices are advertised.

A reboot (or GPU reset) is required after toggling MIG mode on most platforms.
`)
}

func nvlinkTemplate(string) string {
	return strings.TrimSpace(`
To diagnose NVLink connectivity between GPUs:

1. Check link status: ` + "`nvidia-smi nvlink --status`" + `
2. Inspect the GPU topology: ` + "`nvidia-smi topo -m`" + `
3. Confirm the driver version supports the installed interconnect.
4. Verify the physical bridge/backplane connections.
5. Review the system BIOS settings for peer-to-peer support.

Peer access must also be enabled in CUDA with ` + "`cudaDeviceEnablePeerAccess`" + ` before P2P transfers are used.
`)
}

func tensorrtTemplate(string) string {
	return strings.TrimSpace(`
According to the TensorRT documentation, the usual optimization flow is:

1. Export the model to ONNX.
2. Build an engine with reduced precision enabled:

` + "```python" + `
import tensorrt as trt

builder = trt.Builder(logger)
config = builder.create_builder_config()
config.set_flag(trt.BuilderFlag.FP16)
` + "```" + `

3. Calibrate if using INT8 precision.
4. Serialize the engine and reuse it at inference time.

FP16 typically gives near-2x throughput on tensor-core GPUs with minimal accuracy loss.
`)
}

func nemoTemplate(string) string {
	return strings.TrimSpace(`
The NeMo framework covers LLM, ASR and TTS workloads:

1. Install the framework: ` + "`pip install nemo_toolkit['all']`" + `
2. Start from a pretrained checkpoint:

` + "```python" + `
import nemo.collections.asr as nemo_asr

model = nemo_asr.models.ASRModel.from_pretrained("stt_en_conformer_ctc_large")
` + "```" + `

3. Fine-tune with your own config and data manifests.
4. Export to Riva or Triton for deployment.
`)
}

func tritonTemplate(string) string {
	return strings.TrimSpace(`
To serve models with Triton Inference Server:

1. Lay out a model repository (` + "`<repo>/<model>/<version>/model.onnx`" + ` plus ` + "`config.pbtxt`" + `).
2. Start the server: ` + "`docker run --gpus=all -p8000:8000 -p8001:8001 -v/models:/models nvcr.io/nvidia/tritonserver:<tag> tritonserver --model-repository=/models`" + `
3. Check readiness: ` + "`curl -v localhost:8000/v2/health/ready`" + `
4. Send requests with the HTTP/gRPC client libraries.

Dynamic batching and concurrent model instances are configured per model in ` + "`config.pbtxt`" + `.
`)
}

func profilingTemplate(string) string {
	return strings.TrimSpace(`
For CUDA performance analysis, work top-down:

1. Use Nsight Systems for a timeline view: ` + "`nsys profile ./app`" + `
2. Use Nsight Compute for per-kernel analysis: ` + "`ncu --set full ./app`" + `
3. Check for memory bottlenecks before tuning arithmetic.
4. Analyze kernel occupancy and launch configuration.
5. Review memory access patterns for coalescing.

| Tool | Scope | Typical question |
| --- | --- | --- |
| Nsight Systems | whole application | where does the time go? |
| Nsight Compute | single kernel | why is this kernel slow? |
| nvidia-smi | device | is the GPU busy at all? |
`)
}

func cudaTemplate(string) string {
	return strings.TrimSpace(`
From the CUDA programming guide, the core execution model:

1. A kernel launches a grid of thread blocks; each block runs on one SM.
2. Threads within a block share memory and can synchronize with ` + "`__syncthreads()`" + `.

` + "```cuda" + `
__global__ void vectorAdd(const float *a, const float *b, float *c, int n) {
    int i = blockIdx.x * blockDim.x + threadIdx.x;
    if (i < n) c[i] = a[i] + b[i];
}
` + "```" + `

3. Choose block sizes that are multiples of the warp size (32).
4. Prefer coalesced global memory access; stage reuse through shared memory.
`)
}

func genericTemplate(query string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here is what I can tell you about %q:\n\n", query)
	b.WriteString("I could not match this question to a specific product area, so the ")
	b.WriteString("general documentation below is the best starting point. Try including ")
	b.WriteString("the product name (CUDA, TensorRT, Triton, NeMo, MIG, NVLink) for a ")
	b.WriteString("more targeted answer.")
	return b.String()
}
