// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: exportq/v1/export_queue.proto

package v1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Priority      int32                  `protobuf:"varint,2,opt,name=priority,proto3" json:"priority,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt     *timestamppb.Timestamp `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	StartedAt     *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt   *timestamppb.Timestamp `protobuf:"bytes,6,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	RetryCount    int32                  `protobuf:"varint,7,opt,name=retry_count,json=retryCount,proto3" json:"retry_count,omitempty"`
	LastError     string                 `protobuf:"bytes,8,opt,name=last_error,json=lastError,proto3" json:"last_error,omitempty"`
	Payload       []byte                 `protobuf:"bytes,9,opt,name=payload,proto3" json:"payload,omitempty"`
	Result        []byte                 `protobuf:"bytes,10,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetCreatedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CreatedAt
	}
	return nil
}

func (x *Job) GetStartedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.StartedAt
	}
	return nil
}

func (x *Job) GetCompletedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.CompletedAt
	}
	return nil
}

func (x *Job) GetRetryCount() int32 {
	if x != nil {
		return x.RetryCount
	}
	return 0
}

func (x *Job) GetLastError() string {
	if x != nil {
		return x.LastError
	}
	return ""
}

func (x *Job) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *Job) GetResult() []byte {
	if x != nil {
		return x.Result
	}
	return nil
}

type WorkerState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int32                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	CurrentJobId  string                 `protobuf:"bytes,3,opt,name=current_job_id,json=currentJobId,proto3" json:"current_job_id,omitempty"`
	JobsProcessed int32                  `protobuf:"varint,4,opt,name=jobs_processed,json=jobsProcessed,proto3" json:"jobs_processed,omitempty"`
	LastActivity  *timestamppb.Timestamp `protobuf:"bytes,5,opt,name=last_activity,json=lastActivity,proto3" json:"last_activity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *WorkerState) Reset() {
	*x = WorkerState{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WorkerState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WorkerState) ProtoMessage() {}

func (x *WorkerState) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WorkerState.ProtoReflect.Descriptor instead.
func (*WorkerState) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{1}
}

func (x *WorkerState) GetId() int32 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *WorkerState) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *WorkerState) GetCurrentJobId() string {
	if x != nil {
		return x.CurrentJobId
	}
	return ""
}

func (x *WorkerState) GetJobsProcessed() int32 {
	if x != nil {
		return x.JobsProcessed
	}
	return 0
}

func (x *WorkerState) GetLastActivity() *timestamppb.Timestamp {
	if x != nil {
		return x.LastActivity
	}
	return nil
}

type QueueStatus struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	TotalJobs           int32                  `protobuf:"varint,1,opt,name=total_jobs,json=totalJobs,proto3" json:"total_jobs,omitempty"`
	QueuedJobs          int32                  `protobuf:"varint,2,opt,name=queued_jobs,json=queuedJobs,proto3" json:"queued_jobs,omitempty"`
	ProcessingJobs      int32                  `protobuf:"varint,3,opt,name=processing_jobs,json=processingJobs,proto3" json:"processing_jobs,omitempty"`
	CompletedJobs       int32                  `protobuf:"varint,4,opt,name=completed_jobs,json=completedJobs,proto3" json:"completed_jobs,omitempty"`
	FailedJobs          int32                  `protobuf:"varint,5,opt,name=failed_jobs,json=failedJobs,proto3" json:"failed_jobs,omitempty"`
	CancelledJobs       int32                  `protobuf:"varint,6,opt,name=cancelled_jobs,json=cancelledJobs,proto3" json:"cancelled_jobs,omitempty"`
	AverageWaitMs       int64                  `protobuf:"varint,7,opt,name=average_wait_ms,json=averageWaitMs,proto3" json:"average_wait_ms,omitempty"`
	AverageProcessingMs int64                  `protobuf:"varint,8,opt,name=average_processing_ms,json=averageProcessingMs,proto3" json:"average_processing_ms,omitempty"`
	EstimatedTimeLeftMs int64                  `protobuf:"varint,9,opt,name=estimated_time_left_ms,json=estimatedTimeLeftMs,proto3" json:"estimated_time_left_ms,omitempty"`
	Paused              bool                   `protobuf:"varint,10,opt,name=paused,proto3" json:"paused,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *QueueStatus) Reset() {
	*x = QueueStatus{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueueStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueueStatus) ProtoMessage() {}

func (x *QueueStatus) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueueStatus.ProtoReflect.Descriptor instead.
func (*QueueStatus) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{2}
}

func (x *QueueStatus) GetTotalJobs() int32 {
	if x != nil {
		return x.TotalJobs
	}
	return 0
}

func (x *QueueStatus) GetQueuedJobs() int32 {
	if x != nil {
		return x.QueuedJobs
	}
	return 0
}

func (x *QueueStatus) GetProcessingJobs() int32 {
	if x != nil {
		return x.ProcessingJobs
	}
	return 0
}

func (x *QueueStatus) GetCompletedJobs() int32 {
	if x != nil {
		return x.CompletedJobs
	}
	return 0
}

func (x *QueueStatus) GetFailedJobs() int32 {
	if x != nil {
		return x.FailedJobs
	}
	return 0
}

func (x *QueueStatus) GetCancelledJobs() int32 {
	if x != nil {
		return x.CancelledJobs
	}
	return 0
}

func (x *QueueStatus) GetAverageWaitMs() int64 {
	if x != nil {
		return x.AverageWaitMs
	}
	return 0
}

func (x *QueueStatus) GetAverageProcessingMs() int64 {
	if x != nil {
		return x.AverageProcessingMs
	}
	return 0
}

func (x *QueueStatus) GetEstimatedTimeLeftMs() int64 {
	if x != nil {
		return x.EstimatedTimeLeftMs
	}
	return 0
}

func (x *QueueStatus) GetPaused() bool {
	if x != nil {
		return x.Paused
	}
	return false
}

type SubmitJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Payload       []byte                 `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	Priority      int32                  `protobuf:"varint,2,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobRequest) Reset() {
	*x = SubmitJobRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobRequest) ProtoMessage() {}

func (x *SubmitJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobRequest.ProtoReflect.Descriptor instead.
func (*SubmitJobRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitJobRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *SubmitJobRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type SubmitJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobResponse) Reset() {
	*x = SubmitJobResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobResponse) ProtoMessage() {}

func (x *SubmitJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitJobResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitJobResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type BatchItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Payload       []byte                 `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	Priority      int32                  `protobuf:"varint,2,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchItem) Reset() {
	*x = BatchItem{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchItem) ProtoMessage() {}

func (x *BatchItem) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchItem.ProtoReflect.Descriptor instead.
func (*BatchItem) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{5}
}

func (x *BatchItem) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *BatchItem) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type SubmitBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []*BatchItem           `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchRequest) Reset() {
	*x = SubmitBatchRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchRequest) ProtoMessage() {}

func (x *SubmitBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchRequest.ProtoReflect.Descriptor instead.
func (*SubmitBatchRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{6}
}

func (x *SubmitBatchRequest) GetItems() []*BatchItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type SubmitBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobIds        []string               `protobuf:"bytes,1,rep,name=job_ids,json=jobIds,proto3" json:"job_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitBatchResponse) Reset() {
	*x = SubmitBatchResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitBatchResponse) ProtoMessage() {}

func (x *SubmitBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitBatchResponse.ProtoReflect.Descriptor instead.
func (*SubmitBatchResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{7}
}

func (x *SubmitBatchResponse) GetJobIds() []string {
	if x != nil {
		return x.JobIds
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{8}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cancelled     bool                   `protobuf:"varint,1,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{9}
}

func (x *CancelJobResponse) GetCancelled() bool {
	if x != nil {
		return x.Cancelled
	}
	return false
}

type CancelBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobIds        []string               `protobuf:"bytes,1,rep,name=job_ids,json=jobIds,proto3" json:"job_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBatchRequest) Reset() {
	*x = CancelBatchRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBatchRequest) ProtoMessage() {}

func (x *CancelBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBatchRequest.ProtoReflect.Descriptor instead.
func (*CancelBatchRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{10}
}

func (x *CancelBatchRequest) GetJobIds() []string {
	if x != nil {
		return x.JobIds
	}
	return nil
}

type CancelBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cancelled     int32                  `protobuf:"varint,1,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelBatchResponse) Reset() {
	*x = CancelBatchResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelBatchResponse) ProtoMessage() {}

func (x *CancelBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelBatchResponse.ProtoReflect.Descriptor instead.
func (*CancelBatchResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{11}
}

func (x *CancelBatchResponse) GetCancelled() int32 {
	if x != nil {
		return x.Cancelled
	}
	return 0
}

type ReprioritizeJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Priority      int32                  `protobuf:"varint,2,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprioritizeJobRequest) Reset() {
	*x = ReprioritizeJobRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprioritizeJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprioritizeJobRequest) ProtoMessage() {}

func (x *ReprioritizeJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprioritizeJobRequest.ProtoReflect.Descriptor instead.
func (*ReprioritizeJobRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{12}
}

func (x *ReprioritizeJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ReprioritizeJobRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

type ReprioritizeJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reprioritized bool                   `protobuf:"varint,1,opt,name=reprioritized,proto3" json:"reprioritized,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReprioritizeJobResponse) Reset() {
	*x = ReprioritizeJobResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReprioritizeJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReprioritizeJobResponse) ProtoMessage() {}

func (x *ReprioritizeJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReprioritizeJobResponse.ProtoReflect.Descriptor instead.
func (*ReprioritizeJobResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{13}
}

func (x *ReprioritizeJobResponse) GetReprioritized() bool {
	if x != nil {
		return x.Reprioritized
	}
	return false
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{14}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{15}
}

func (x *GetJobStatusResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetBatchStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobIds        []string               `protobuf:"bytes,1,rep,name=job_ids,json=jobIds,proto3" json:"job_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchStatusRequest) Reset() {
	*x = GetBatchStatusRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusRequest) ProtoMessage() {}

func (x *GetBatchStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusRequest.ProtoReflect.Descriptor instead.
func (*GetBatchStatusRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{16}
}

func (x *GetBatchStatusRequest) GetJobIds() []string {
	if x != nil {
		return x.JobIds
	}
	return nil
}

type GetBatchStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchStatusResponse) Reset() {
	*x = GetBatchStatusResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchStatusResponse) ProtoMessage() {}

func (x *GetBatchStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchStatusResponse.ProtoReflect.Descriptor instead.
func (*GetBatchStatusResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{17}
}

func (x *GetBatchStatusResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type GetQueueStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQueueStatusRequest) Reset() {
	*x = GetQueueStatusRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQueueStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQueueStatusRequest) ProtoMessage() {}

func (x *GetQueueStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQueueStatusRequest.ProtoReflect.Descriptor instead.
func (*GetQueueStatusRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{18}
}

type GetQueueStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        *QueueStatus           `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetQueueStatusResponse) Reset() {
	*x = GetQueueStatusResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetQueueStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetQueueStatusResponse) ProtoMessage() {}

func (x *GetQueueStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetQueueStatusResponse.ProtoReflect.Descriptor instead.
func (*GetQueueStatusResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{19}
}

func (x *GetQueueStatusResponse) GetStatus() *QueueStatus {
	if x != nil {
		return x.Status
	}
	return nil
}

type ListWorkersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWorkersRequest) Reset() {
	*x = ListWorkersRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWorkersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWorkersRequest) ProtoMessage() {}

func (x *ListWorkersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWorkersRequest.ProtoReflect.Descriptor instead.
func (*ListWorkersRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{20}
}

type ListWorkersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Workers       []*WorkerState         `protobuf:"bytes,1,rep,name=workers,proto3" json:"workers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWorkersResponse) Reset() {
	*x = ListWorkersResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWorkersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWorkersResponse) ProtoMessage() {}

func (x *ListWorkersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWorkersResponse.ProtoReflect.Descriptor instead.
func (*ListWorkersResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{21}
}

func (x *ListWorkersResponse) GetWorkers() []*WorkerState {
	if x != nil {
		return x.Workers
	}
	return nil
}

type PauseQueueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PauseQueueRequest) Reset() {
	*x = PauseQueueRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseQueueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseQueueRequest) ProtoMessage() {}

func (x *PauseQueueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseQueueRequest.ProtoReflect.Descriptor instead.
func (*PauseQueueRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{22}
}

type PauseQueueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PauseQueueResponse) Reset() {
	*x = PauseQueueResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PauseQueueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PauseQueueResponse) ProtoMessage() {}

func (x *PauseQueueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PauseQueueResponse.ProtoReflect.Descriptor instead.
func (*PauseQueueResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{23}
}

type ResumeQueueRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeQueueRequest) Reset() {
	*x = ResumeQueueRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeQueueRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeQueueRequest) ProtoMessage() {}

func (x *ResumeQueueRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeQueueRequest.ProtoReflect.Descriptor instead.
func (*ResumeQueueRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{24}
}

type ResumeQueueResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResumeQueueResponse) Reset() {
	*x = ResumeQueueResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResumeQueueResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResumeQueueResponse) ProtoMessage() {}

func (x *ResumeQueueResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResumeQueueResponse.ProtoReflect.Descriptor instead.
func (*ResumeQueueResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{25}
}

type ScheduleJobRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Payload  []byte                 `protobuf:"bytes,1,opt,name=payload,proto3" json:"payload,omitempty"`
	Priority int32                  `protobuf:"varint,2,opt,name=priority,proto3" json:"priority,omitempty"`
	// Exactly one of run_at / interval_ms: a one-shot submission at an
	// instant, or a recurring submission every interval.
	RunAt         *timestamppb.Timestamp `protobuf:"bytes,3,opt,name=run_at,json=runAt,proto3" json:"run_at,omitempty"`
	IntervalMs    int64                  `protobuf:"varint,4,opt,name=interval_ms,json=intervalMs,proto3" json:"interval_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleJobRequest) Reset() {
	*x = ScheduleJobRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleJobRequest) ProtoMessage() {}

func (x *ScheduleJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleJobRequest.ProtoReflect.Descriptor instead.
func (*ScheduleJobRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{26}
}

func (x *ScheduleJobRequest) GetPayload() []byte {
	if x != nil {
		return x.Payload
	}
	return nil
}

func (x *ScheduleJobRequest) GetPriority() int32 {
	if x != nil {
		return x.Priority
	}
	return 0
}

func (x *ScheduleJobRequest) GetRunAt() *timestamppb.Timestamp {
	if x != nil {
		return x.RunAt
	}
	return nil
}

func (x *ScheduleJobRequest) GetIntervalMs() int64 {
	if x != nil {
		return x.IntervalMs
	}
	return 0
}

type ScheduleJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScheduleId    string                 `protobuf:"bytes,1,opt,name=schedule_id,json=scheduleId,proto3" json:"schedule_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScheduleJobResponse) Reset() {
	*x = ScheduleJobResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScheduleJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScheduleJobResponse) ProtoMessage() {}

func (x *ScheduleJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScheduleJobResponse.ProtoReflect.Descriptor instead.
func (*ScheduleJobResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{27}
}

func (x *ScheduleJobResponse) GetScheduleId() string {
	if x != nil {
		return x.ScheduleId
	}
	return ""
}

type CancelScheduleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScheduleId    string                 `protobuf:"bytes,1,opt,name=schedule_id,json=scheduleId,proto3" json:"schedule_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelScheduleRequest) Reset() {
	*x = CancelScheduleRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelScheduleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelScheduleRequest) ProtoMessage() {}

func (x *CancelScheduleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelScheduleRequest.ProtoReflect.Descriptor instead.
func (*CancelScheduleRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{28}
}

func (x *CancelScheduleRequest) GetScheduleId() string {
	if x != nil {
		return x.ScheduleId
	}
	return ""
}

type CancelScheduleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cancelled     bool                   `protobuf:"varint,1,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelScheduleResponse) Reset() {
	*x = CancelScheduleResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelScheduleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelScheduleResponse) ProtoMessage() {}

func (x *CancelScheduleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelScheduleResponse.ProtoReflect.Descriptor instead.
func (*CancelScheduleResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{29}
}

func (x *CancelScheduleResponse) GetCancelled() bool {
	if x != nil {
		return x.Cancelled
	}
	return false
}

type ExportReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{30}
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_exportq_v1_export_queue_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_exportq_v1_export_queue_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_exportq_v1_export_queue_proto_rawDescGZIP(), []int{31}
}

func (x *ExportReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_exportq_v1_export_queue_proto protoreflect.FileDescriptor

const file_exportq_v1_export_queue_proto_rawDesc = "" +
	"\n" +
	"\x1dexportq/v1/export_queue.proto\x12\n" +
	"exportq.v1\x1a\x1fgoogle/protobuf/timestamp.proto\"\xf0\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bpriority\x18\x02 \x01(\x05R\bpriority\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x129\n" +
	"\n" +
	"created_at\x18\x04 \x01(\v2\x1a.google.protobuf.TimestampR\tcreatedAt\x129\n" +
	"\n" +
	"started_at\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\tstartedAt\x12=\n" +
	"\fcompleted_at\x18\x06 \x01(\v2\x1a.google.protobuf.TimestampR\vcompletedAt\x12\x1f\n" +
	"\vretry_count\x18\a \x01(\x05R\n" +
	"retryCount\x12\x1d\n" +
	"\n" +
	"last_error\x18\b \x01(\tR\tlastError\x12\x18\n" +
	"\apayload\x18\t \x01(\fR\apayload\x12\x16\n" +
	"\x06result\x18\n" +
	" \x01(\fR\x06result\"\xc3\x01\n" +
	"\vWorkerState\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x05R\x02id\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12$\n" +
	"\x0ecurrent_job_id\x18\x03 \x01(\tR\fcurrentJobId\x12%\n" +
	"\x0ejobs_processed\x18\x04 \x01(\x05R\rjobsProcessed\x12?\n" +
	"\rlast_activity\x18\x05 \x01(\v2\x1a.google.protobuf.TimestampR\flastActivity\"\x8e\x03\n" +
	"\vQueueStatus\x12\x1d\n" +
	"\n" +
	"total_jobs\x18\x01 \x01(\x05R\ttotalJobs\x12\x1f\n" +
	"\vqueued_jobs\x18\x02 \x01(\x05R\n" +
	"queuedJobs\x12'\n" +
	"\x0fprocessing_jobs\x18\x03 \x01(\x05R\x0eprocessingJobs\x12%\n" +
	"\x0ecompleted_jobs\x18\x04 \x01(\x05R\rcompletedJobs\x12\x1f\n" +
	"\vfailed_jobs\x18\x05 \x01(\x05R\n" +
	"failedJobs\x12%\n" +
	"\x0ecancelled_jobs\x18\x06 \x01(\x05R\rcancelledJobs\x12&\n" +
	"\x0faverage_wait_ms\x18\a \x01(\x03R\raverageWaitMs\x122\n" +
	"\x15average_processing_ms\x18\b \x01(\x03R\x13averageProcessingMs\x123\n" +
	"\x16estimated_time_left_ms\x18\t \x01(\x03R\x13estimatedTimeLeftMs\x12\x16\n" +
	"\x06paused\x18\n" +
	" \x01(\bR\x06paused\"H\n" +
	"\x10SubmitJobRequest\x12\x18\n" +
	"\apayload\x18\x01 \x01(\fR\apayload\x12\x1a\n" +
	"\bpriority\x18\x02 \x01(\x05R\bpriority\"*\n" +
	"\x11SubmitJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"A\n" +
	"\tBatchItem\x12\x18\n" +
	"\apayload\x18\x01 \x01(\fR\apayload\x12\x1a\n" +
	"\bpriority\x18\x02 \x01(\x05R\bpriority\"A\n" +
	"\x12SubmitBatchRequest\x12+\n" +
	"\x05items\x18\x01 \x03(\v2\x15.exportq.v1.BatchItemR\x05items\".\n" +
	"\x13SubmitBatchResponse\x12\x17\n" +
	"\ajob_ids\x18\x01 \x03(\tR\x06jobIds\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"1\n" +
	"\x11CancelJobResponse\x12\x1c\n" +
	"\tcancelled\x18\x01 \x01(\bR\tcancelled\"-\n" +
	"\x12CancelBatchRequest\x12\x17\n" +
	"\ajob_ids\x18\x01 \x03(\tR\x06jobIds\"3\n" +
	"\x13CancelBatchResponse\x12\x1c\n" +
	"\tcancelled\x18\x01 \x01(\x05R\tcancelled\"K\n" +
	"\x16ReprioritizeJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x1a\n" +
	"\bpriority\x18\x02 \x01(\x05R\bpriority\"?\n" +
	"\x17ReprioritizeJobResponse\x12$\n" +
	"\rreprioritized\x18\x01 \x01(\bR\rreprioritized\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"9\n" +
	"\x14GetJobStatusResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.exportq.v1.JobR\x03job\"0\n" +
	"\x15GetBatchStatusRequest\x12\x17\n" +
	"\ajob_ids\x18\x01 \x03(\tR\x06jobIds\"=\n" +
	"\x16GetBatchStatusResponse\x12#\n" +
	"\x04jobs\x18\x01 \x03(\v2\x0f.exportq.v1.JobR\x04jobs\"\x17\n" +
	"\x15GetQueueStatusRequest\"I\n" +
	"\x16GetQueueStatusResponse\x12/\n" +
	"\x06status\x18\x01 \x01(\v2\x17.exportq.v1.QueueStatusR\x06status\"\x14\n" +
	"\x12ListWorkersRequest\"H\n" +
	"\x13ListWorkersResponse\x121\n" +
	"\aworkers\x18\x01 \x03(\v2\x17.exportq.v1.WorkerStateR\aworkers\"\x13\n" +
	"\x11PauseQueueRequest\"\x14\n" +
	"\x12PauseQueueResponse\"\x14\n" +
	"\x12ResumeQueueRequest\"\x15\n" +
	"\x13ResumeQueueResponse\"\x9e\x01\n" +
	"\x12ScheduleJobRequest\x12\x18\n" +
	"\apayload\x18\x01 \x01(\fR\apayload\x12\x1a\n" +
	"\bpriority\x18\x02 \x01(\x05R\bpriority\x121\n" +
	"\x06run_at\x18\x03 \x01(\v2\x1a.google.protobuf.TimestampR\x05runAt\x12\x1f\n" +
	"\vinterval_ms\x18\x04 \x01(\x03R\n" +
	"intervalMs\"6\n" +
	"\x13ScheduleJobResponse\x12\x1f\n" +
	"\vschedule_id\x18\x01 \x01(\tR\n" +
	"scheduleId\"8\n" +
	"\x15CancelScheduleRequest\x12\x1f\n" +
	"\vschedule_id\x18\x01 \x01(\tR\n" +
	"scheduleId\"6\n" +
	"\x16CancelScheduleResponse\x12\x1c\n" +
	"\tcancelled\x18\x01 \x01(\bR\tcancelled\"\x15\n" +
	"\x13ExportReportRequest\"*\n" +
	"\x14ExportReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x92\t\n" +
	"\x12ExportQueueService\x12H\n" +
	"\tSubmitJob\x12\x1c.exportq.v1.SubmitJobRequest\x1a\x1d.exportq.v1.SubmitJobResponse\x12N\n" +
	"\vSubmitBatch\x12\x1e.exportq.v1.SubmitBatchRequest\x1a\x1f.exportq.v1.SubmitBatchResponse\x12H\n" +
	"\tCancelJob\x12\x1c.exportq.v1.CancelJobRequest\x1a\x1d.exportq.v1.CancelJobResponse\x12N\n" +
	"\vCancelBatch\x12\x1e.exportq.v1.CancelBatchRequest\x1a\x1f.exportq.v1.CancelBatchResponse\x12Z\n" +
	"\x0fReprioritizeJob\x12\".exportq.v1.ReprioritizeJobRequest\x1a#.exportq.v1.ReprioritizeJobResponse\x12Q\n" +
	"\fGetJobStatus\x12\x1f.exportq.v1.GetJobStatusRequest\x1a .exportq.v1.GetJobStatusResponse\x12W\n" +
	"\x0eGetBatchStatus\x12!.exportq.v1.GetBatchStatusRequest\x1a\".exportq.v1.GetBatchStatusResponse\x12W\n" +
	"\x0eGetQueueStatus\x12!.exportq.v1.GetQueueStatusRequest\x1a\".exportq.v1.GetQueueStatusResponse\x12N\n" +
	"\vListWorkers\x12\x1e.exportq.v1.ListWorkersRequest\x1a\x1f.exportq.v1.ListWorkersResponse\x12K\n" +
	"\n" +
	"PauseQueue\x12\x1d.exportq.v1.PauseQueueRequest\x1a\x1e.exportq.v1.PauseQueueResponse\x12N\n" +
	"\vResumeQueue\x12\x1e.exportq.v1.ResumeQueueRequest\x1a\x1f.exportq.v1.ResumeQueueResponse\x12N\n" +
	"\vScheduleJob\x12\x1e.exportq.v1.ScheduleJobRequest\x1a\x1f.exportq.v1.ScheduleJobResponse\x12W\n" +
	"\x0eCancelSchedule\x12!.exportq.v1.CancelScheduleRequest\x1a\".exportq.v1.CancelScheduleResponse\x12Q\n" +
	"\fExportReport\x12\x1f.exportq.v1.ExportReportRequest\x1a .exportq.v1.ExportReportResponseB9Z7github.com/calebmartins/exportq/gen/proto/exportq/v1;v1b\x06proto3"

var (
	file_exportq_v1_export_queue_proto_rawDescOnce sync.Once
	file_exportq_v1_export_queue_proto_rawDescData []byte
)

func file_exportq_v1_export_queue_proto_rawDescGZIP() []byte {
	file_exportq_v1_export_queue_proto_rawDescOnce.Do(func() {
		file_exportq_v1_export_queue_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_exportq_v1_export_queue_proto_rawDesc), len(file_exportq_v1_export_queue_proto_rawDesc)))
	})
	return file_exportq_v1_export_queue_proto_rawDescData
}

var file_exportq_v1_export_queue_proto_msgTypes = make([]protoimpl.MessageInfo, 32)
var file_exportq_v1_export_queue_proto_goTypes = []any{
	(*Job)(nil),                     // 0: exportq.v1.Job
	(*WorkerState)(nil),             // 1: exportq.v1.WorkerState
	(*QueueStatus)(nil),             // 2: exportq.v1.QueueStatus
	(*SubmitJobRequest)(nil),        // 3: exportq.v1.SubmitJobRequest
	(*SubmitJobResponse)(nil),       // 4: exportq.v1.SubmitJobResponse
	(*BatchItem)(nil),               // 5: exportq.v1.BatchItem
	(*SubmitBatchRequest)(nil),      // 6: exportq.v1.SubmitBatchRequest
	(*SubmitBatchResponse)(nil),     // 7: exportq.v1.SubmitBatchResponse
	(*CancelJobRequest)(nil),        // 8: exportq.v1.CancelJobRequest
	(*CancelJobResponse)(nil),       // 9: exportq.v1.CancelJobResponse
	(*CancelBatchRequest)(nil),      // 10: exportq.v1.CancelBatchRequest
	(*CancelBatchResponse)(nil),     // 11: exportq.v1.CancelBatchResponse
	(*ReprioritizeJobRequest)(nil),  // 12: exportq.v1.ReprioritizeJobRequest
	(*ReprioritizeJobResponse)(nil), // 13: exportq.v1.ReprioritizeJobResponse
	(*GetJobStatusRequest)(nil),     // 14: exportq.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),    // 15: exportq.v1.GetJobStatusResponse
	(*GetBatchStatusRequest)(nil),   // 16: exportq.v1.GetBatchStatusRequest
	(*GetBatchStatusResponse)(nil),  // 17: exportq.v1.GetBatchStatusResponse
	(*GetQueueStatusRequest)(nil),   // 18: exportq.v1.GetQueueStatusRequest
	(*GetQueueStatusResponse)(nil),  // 19: exportq.v1.GetQueueStatusResponse
	(*ListWorkersRequest)(nil),      // 20: exportq.v1.ListWorkersRequest
	(*ListWorkersResponse)(nil),     // 21: exportq.v1.ListWorkersResponse
	(*PauseQueueRequest)(nil),       // 22: exportq.v1.PauseQueueRequest
	(*PauseQueueResponse)(nil),      // 23: exportq.v1.PauseQueueResponse
	(*ResumeQueueRequest)(nil),      // 24: exportq.v1.ResumeQueueRequest
	(*ResumeQueueResponse)(nil),     // 25: exportq.v1.ResumeQueueResponse
	(*ScheduleJobRequest)(nil),      // 26: exportq.v1.ScheduleJobRequest
	(*ScheduleJobResponse)(nil),     // 27: exportq.v1.ScheduleJobResponse
	(*CancelScheduleRequest)(nil),   // 28: exportq.v1.CancelScheduleRequest
	(*CancelScheduleResponse)(nil),  // 29: exportq.v1.CancelScheduleResponse
	(*ExportReportRequest)(nil),     // 30: exportq.v1.ExportReportRequest
	(*ExportReportResponse)(nil),    // 31: exportq.v1.ExportReportResponse
	(*timestamppb.Timestamp)(nil),   // 32: google.protobuf.Timestamp
}
var file_exportq_v1_export_queue_proto_depIdxs = []int32{
	32, // 0: exportq.v1.Job.created_at:type_name -> google.protobuf.Timestamp
	32, // 1: exportq.v1.Job.started_at:type_name -> google.protobuf.Timestamp
	32, // 2: exportq.v1.Job.completed_at:type_name -> google.protobuf.Timestamp
	32, // 3: exportq.v1.WorkerState.last_activity:type_name -> google.protobuf.Timestamp
	5,  // 4: exportq.v1.SubmitBatchRequest.items:type_name -> exportq.v1.BatchItem
	0,  // 5: exportq.v1.GetJobStatusResponse.job:type_name -> exportq.v1.Job
	0,  // 6: exportq.v1.GetBatchStatusResponse.jobs:type_name -> exportq.v1.Job
	2,  // 7: exportq.v1.GetQueueStatusResponse.status:type_name -> exportq.v1.QueueStatus
	1,  // 8: exportq.v1.ListWorkersResponse.workers:type_name -> exportq.v1.WorkerState
	32, // 9: exportq.v1.ScheduleJobRequest.run_at:type_name -> google.protobuf.Timestamp
	3,  // 10: exportq.v1.ExportQueueService.SubmitJob:input_type -> exportq.v1.SubmitJobRequest
	6,  // 11: exportq.v1.ExportQueueService.SubmitBatch:input_type -> exportq.v1.SubmitBatchRequest
	8,  // 12: exportq.v1.ExportQueueService.CancelJob:input_type -> exportq.v1.CancelJobRequest
	10, // 13: exportq.v1.ExportQueueService.CancelBatch:input_type -> exportq.v1.CancelBatchRequest
	12, // 14: exportq.v1.ExportQueueService.ReprioritizeJob:input_type -> exportq.v1.ReprioritizeJobRequest
	14, // 15: exportq.v1.ExportQueueService.GetJobStatus:input_type -> exportq.v1.GetJobStatusRequest
	16, // 16: exportq.v1.ExportQueueService.GetBatchStatus:input_type -> exportq.v1.GetBatchStatusRequest
	18, // 17: exportq.v1.ExportQueueService.GetQueueStatus:input_type -> exportq.v1.GetQueueStatusRequest
	20, // 18: exportq.v1.ExportQueueService.ListWorkers:input_type -> exportq.v1.ListWorkersRequest
	22, // 19: exportq.v1.ExportQueueService.PauseQueue:input_type -> exportq.v1.PauseQueueRequest
	24, // 20: exportq.v1.ExportQueueService.ResumeQueue:input_type -> exportq.v1.ResumeQueueRequest
	26, // 21: exportq.v1.ExportQueueService.ScheduleJob:input_type -> exportq.v1.ScheduleJobRequest
	28, // 22: exportq.v1.ExportQueueService.CancelSchedule:input_type -> exportq.v1.CancelScheduleRequest
	30, // 23: exportq.v1.ExportQueueService.ExportReport:input_type -> exportq.v1.ExportReportRequest
	4,  // 24: exportq.v1.ExportQueueService.SubmitJob:output_type -> exportq.v1.SubmitJobResponse
	7,  // 25: exportq.v1.ExportQueueService.SubmitBatch:output_type -> exportq.v1.SubmitBatchResponse
	9,  // 26: exportq.v1.ExportQueueService.CancelJob:output_type -> exportq.v1.CancelJobResponse
	11, // 27: exportq.v1.ExportQueueService.CancelBatch:output_type -> exportq.v1.CancelBatchResponse
	13, // 28: exportq.v1.ExportQueueService.ReprioritizeJob:output_type -> exportq.v1.ReprioritizeJobResponse
	15, // 29: exportq.v1.ExportQueueService.GetJobStatus:output_type -> exportq.v1.GetJobStatusResponse
	17, // 30: exportq.v1.ExportQueueService.GetBatchStatus:output_type -> exportq.v1.GetBatchStatusResponse
	19, // 31: exportq.v1.ExportQueueService.GetQueueStatus:output_type -> exportq.v1.GetQueueStatusResponse
	21, // 32: exportq.v1.ExportQueueService.ListWorkers:output_type -> exportq.v1.ListWorkersResponse
	23, // 33: exportq.v1.ExportQueueService.PauseQueue:output_type -> exportq.v1.PauseQueueResponse
	25, // 34: exportq.v1.ExportQueueService.ResumeQueue:output_type -> exportq.v1.ResumeQueueResponse
	27, // 35: exportq.v1.ExportQueueService.ScheduleJob:output_type -> exportq.v1.ScheduleJobResponse
	29, // 36: exportq.v1.ExportQueueService.CancelSchedule:output_type -> exportq.v1.CancelScheduleResponse
	31, // 37: exportq.v1.ExportQueueService.ExportReport:output_type -> exportq.v1.ExportReportResponse
	24, // [24:38] is the sub-list for method output_type
	10, // [10:24] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_exportq_v1_export_queue_proto_init() }
func file_exportq_v1_export_queue_proto_init() {
	if File_exportq_v1_export_queue_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_exportq_v1_export_queue_proto_rawDesc), len(file_exportq_v1_export_queue_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   32,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_exportq_v1_export_queue_proto_goTypes,
		DependencyIndexes: file_exportq_v1_export_queue_proto_depIdxs,
		MessageInfos:      file_exportq_v1_export_queue_proto_msgTypes,
	}.Build()
	File_exportq_v1_export_queue_proto = out.File
	file_exportq_v1_export_queue_proto_goTypes = nil
	file_exportq_v1_export_queue_proto_depIdxs = nil
}
